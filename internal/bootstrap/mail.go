package bootstrap

import (
	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/config"
	"github.com/gavinjunior/portfolio-backend/internal/mail"
)

// NewMailSender picks the outbound transport named by MAIL_TRANSPORT.
// Missing credentials yield a sender that fails each request with a
// configuration error rather than stopping the process.
func NewMailSender(cfg config.MailConfig, logger *zap.Logger) mail.Sender {
	switch cfg.Transport {
	case config.MailTransportConsole:
		return mail.NewConsoleSender(logger.Named("mail"))
	case config.MailTransportSendgrid:
		if cfg.SendgridAPIKey == "" {
			logger.Warn("SENDGRID_API_KEY is not set; contact form is disabled")
			return mail.Unconfigured{Reason: "SENDGRID_API_KEY is not set"}
		}
		return mail.NewSendgridSender(cfg.SendgridAPIKey)
	default:
		if cfg.User == "" || cfg.Password == "" {
			logger.Warn("EMAIL_USER or EMAIL_PASS is not set; contact form is disabled")
			return mail.Unconfigured{Reason: "EMAIL_USER or EMAIL_PASS is not set"}
		}
		return mail.NewSMTPSender(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
}
