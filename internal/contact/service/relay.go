package service

import (
	"context"
	"fmt"
	"html"
	netmail "net/mail"

	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/internal/contact/domain"
	"github.com/gavinjunior/portfolio-backend/internal/mail"
)

// Relay forwards contact submissions to the site owner's inbox.
type Relay struct {
	sender    mail.Sender
	from      string
	recipient string
	logger    *zap.Logger
}

func NewRelay(sender mail.Sender, from, recipient string, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{sender: sender, from: from, recipient: recipient, logger: logger}
}

// Send delivers one submission and returns the transport's error, if any.
func (r *Relay) Send(ctx context.Context, msg domain.Message) error {
	if r.sender == nil || r.from == "" || r.recipient == "" {
		return fmt.Errorf("%w: EMAIL_USER and EMAIL_TO must be set", mail.ErrNotConfigured)
	}

	out := Compose(msg, r.from, r.recipient)
	if err := r.sender.Send(ctx, out); err != nil {
		r.logger.Error("contact relay failed", zap.Error(err))
		return err
	}
	r.logger.Info("contact message relayed", zap.String("reply_to", msg.Email))
	return nil
}

// Compose builds the outbound email for a submission. The submitter's address
// becomes Reply-To when it parses as an address.
func Compose(msg domain.Message, from, recipient string) mail.Message {
	out := mail.Message{
		From:    netmail.Address{Address: from},
		To:      []netmail.Address{{Address: recipient}},
		Subject: msg.Subject(),
		Text: fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s\n",
			msg.Name, msg.Email, msg.Message),
		HTML: fmt.Sprintf(
			"<p><strong>Name:</strong> %s</p>\n<p><strong>Email:</strong> %s</p>\n<p><strong>Message:</strong> %s</p>\n",
			html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Message)),
	}
	if addr, err := netmail.ParseAddress(msg.Email); err == nil {
		if addr.Name == "" {
			addr.Name = msg.Name
		}
		out.ReplyTo = addr
	}
	return out
}
