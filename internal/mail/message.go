package mail

import (
	"context"
	"errors"
	"net/mail"
)

// ErrNotConfigured is returned when the transport lacks credentials or a recipient.
var ErrNotConfigured = errors.New("mail transport is not configured")

// Message is a single outbound email. HTML is optional; Text is always sent.
type Message struct {
	From    mail.Address
	To      []mail.Address
	ReplyTo *mail.Address
	Subject string
	Text    string
	HTML    string
}

func (m Message) HasRecipients() bool {
	return len(m.To) > 0
}

// Sender delivers a message synchronously and reports the transport outcome.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Unconfigured fails every send. It stands in when the selected transport
// has no credentials so the process can still start.
type Unconfigured struct {
	Reason string
}

func (u Unconfigured) Send(ctx context.Context, msg Message) error {
	if u.Reason == "" {
		return ErrNotConfigured
	}
	return errors.Join(ErrNotConfigured, errors.New(u.Reason))
}
