package mailer

import (
	"gopkg.in/gomail.v2"

	"media-catalog/pkg/utils"
)

// Mailer is the outbound dispatch contract. A failed Send must surface to
// the caller; the signup flow treats it as a hard failure.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends plain-text mail through a configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(config utils.EmailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:   config.From,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
