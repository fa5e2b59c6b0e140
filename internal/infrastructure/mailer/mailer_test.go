package mailer

import (
	"bytes"
	"context"
	"testing"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestSMTPMailer_Send(t *testing.T) {
	var captured *gomail.Message
	var host string
	m := &SMTPMailer{send: func(settings domain.SMTPSettings, message *gomail.Message) error {
		captured = message
		host = settings.Host
		return nil
	}}

	settings := domain.DefaultSiteConfig().SMTP
	err := m.Send(context.Background(), settings, "nadia@example.com", "Order confirmed", "<p>Thanks</p>")
	assert.ErrorIs(t, err, errs.ErrMailerNotConfigured)
	assert.Nil(t, captured)

	settings.Pass = "app-password"
	require.NoError(t, m.Send(context.Background(), settings, "nadia@example.com", "Order confirmed", "<p>Thanks</p>"))
	require.NotNil(t, captured)
	assert.Equal(t, "smtp.gmail.com", host)
	assert.Equal(t, []string{"orders@velvetvogue.com"}, captured.GetHeader("From"))
	assert.Equal(t, []string{"nadia@example.com"}, captured.GetHeader("To"))

	var buf bytes.Buffer
	_, err = captured.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<p>Thanks</p>")
}

func TestSender(t *testing.T) {
	settings := domain.SMTPSettings{User: "shop@gmail.com", FromEmail: "orders@velvetvogue.com"}
	assert.Equal(t, "orders@velvetvogue.com", sender(settings))

	settings.FromEmail = ""
	assert.Equal(t, "shop@gmail.com", sender(settings))
}
