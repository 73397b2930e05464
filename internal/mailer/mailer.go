package mailer

import (
	"gopkg.in/gomail.v2"
)

// Sender delivers a single HTML email to one recipient.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender delivers mail through a transactional SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a sender for the given relay. Returns nil when the
// relay is not configured, which downstream code treats as "mail disabled".
func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	if host == "" || user == "" || password == "" {
		return nil
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
	}
}

// Send delivers one message. Each call dials a fresh SMTP session; delivery
// volume here is a handful of inquiry notifications a day.
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, "Foodcart Website")
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}
