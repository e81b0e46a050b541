package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/config"
)

// Sender delivers plain-text mail. Services depend on this interface so tests
// can substitute a recorder.
type Sender interface {
	Send(to, subject, body string) error
}

type dialer interface {
	DialAndSend(...*gomail.Message) error
}

// Mailer sends mail through the configured SMTP relay.
type Mailer struct {
	cfg    config.MailConfig
	dialer dialer
}

// New builds a Mailer from SMTP settings.
func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
	}
}

// Send delivers a plain-text message to a single recipient.
func (m *Mailer) Send(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("recipient is required")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.FromAddress)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
