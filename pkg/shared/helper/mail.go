package helper

import (
	"context"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, user string, password string, from string) *Mailer {
	return &Mailer{dialer: gomail.NewDialer(host, port, user, password), from: from}
}

func NewMailerFromEnv() *Mailer {
	user := GetenvStr("SMTP_USER", "")
	return NewMailer(
		GetenvStr("SMTP_HOST", "localhost"),
		GetenvInt("SMTP_PORT", 587),
		user,
		GetenvStr("SMTP_PASSWORD", ""),
		GetenvStr("MAIL_FROM", user),
	)
}

// SendMail delivers an HTML message. gomail has no context support, so ctx is only checked
// before dialing.
func (m *Mailer) SendMail(ctx context.Context, to string, subject string, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}
