// Package mailer sends best-effort email notifications for shift-change
// events. When no SMTP host is configured every send is a no-op, so the
// portal runs fine without a mail server.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Notify(to, subject, body string)
}

type SMTPMailer struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass, From: from}
}

// Notify delivers one message. Failures are logged to stdout and swallowed;
// workflow operations never fail because mail did not go out.
func (m *SMTPMailer) Notify(to, subject, body string) {
	if m.Host == "" || to == "" {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("Warning: failed to send notification email:", err)
	}
}
