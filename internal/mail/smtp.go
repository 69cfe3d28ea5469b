package mail

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"
)

// SMTPSender submits mail through an authenticated SMTP relay such as Gmail.
type SMTPSender struct {
	host     string
	port     int
	user     string
	password string

	// sendMail is smtp.SendMail outside tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		sendMail: smtp.SendMail,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.user == "" || s.password == "" || s.host == "" {
		return ErrNotConfigured
	}
	if !msg.HasRecipients() {
		return fmt.Errorf("%w: no recipient", ErrNotConfigured)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := Render(msg, time.Now())
	if err != nil {
		return fmt.Errorf("rendering email: %w", err)
	}

	to := make([]string, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, addr.Address)
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	if err := s.sendMail(addr, auth, msg.From.Address, to, body); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// Render writes msg as a MIME multipart/alternative document.
func Render(msg Message, now time.Time) ([]byte, error) {
	body := new(strings.Builder)

	to := make([]string, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, addr.String())
	}

	_, _ = fmt.Fprintf(body, "From: %s\r\n", msg.From.String())
	_, _ = fmt.Fprintf(body, "To: %s\r\n", strings.Join(to, ", "))
	if msg.ReplyTo != nil {
		_, _ = fmt.Fprintf(body, "Reply-To: %s\r\n", msg.ReplyTo.String())
	}
	_, _ = fmt.Fprintf(body, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	_, _ = fmt.Fprintf(body, "Date: %s\r\n", now.Format(time.RFC1123Z))
	_, _ = fmt.Fprint(body, "MIME-Version: 1.0\r\n")

	altW := multipart.NewWriter(body)
	_, _ = fmt.Fprintf(body, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", altW.Boundary())

	w, err := altW.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=utf-8"}})
	if err != nil {
		return nil, fmt.Errorf("creating text/plain part: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s\r\n", msg.Text)

	if msg.HTML != "" {
		w, err = altW.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=utf-8"}})
		if err != nil {
			return nil, fmt.Errorf("creating text/html part: %w", err)
		}
		_, _ = fmt.Fprintf(w, "%s\r\n", msg.HTML)
	}

	if err := altW.Close(); err != nil {
		return nil, err
	}
	return []byte(body.String()), nil
}
