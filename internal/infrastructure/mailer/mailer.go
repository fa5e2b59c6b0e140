package mailer

import (
	"context"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type sendFunc func(settings domain.SMTPSettings, message *gomail.Message) error

// SMTPMailer sends through the SMTP account stored in the site configuration.
type SMTPMailer struct {
	send sendFunc
}

func CreateSMTPMailer() *SMTPMailer {
	return &SMTPMailer{send: dialAndSend}
}

func (m *SMTPMailer) Send(ctx context.Context, settings domain.SMTPSettings, to string, subject string, htmlBody string) error {
	if !settings.Configured() {
		return errs.ErrMailerNotConfigured
	}

	message := gomail.NewMessage()
	message.SetHeader("From", sender(settings))
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	if err := m.send(settings, message); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SendEmail").Str("host", settings.Host).Msg("")
		return err
	}

	return nil
}

// sender falls back to the login account when no from address is set.
func sender(settings domain.SMTPSettings) string {
	if settings.FromEmail != "" {
		return settings.FromEmail
	}

	return settings.User
}

func dialAndSend(settings domain.SMTPSettings, message *gomail.Message) error {
	d := gomail.NewDialer(settings.Host, settings.Port, settings.User, settings.Pass)

	return d.DialAndSend(message)
}
