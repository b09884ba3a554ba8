// Package mailer sends workshop mail over SMTP.
package mailer

import (
	"crypto/tls"
	"errors"
	"io"

	gomail "gopkg.in/gomail.v2"

	"warsztat/internal/config"
)

// ErrIncompleteConfig means SMTP settings are missing a host, sender or
// recipient; callers decide whether that is fatal or a skip.
var ErrIncompleteConfig = errors.New("mailer: incomplete smtp configuration")

// Attachment is an in-memory file to attach to a message.
type Attachment struct {
	Filename string
	Content  []byte
}

// Sender delivers one message, optionally with an attachment.
type Sender interface {
	Send(recipient, subject, body string, attachment *Attachment) error
}

type smtpSender struct {
	cfg config.SMTP
}

// NewSMTPSender builds a Sender from SMTP settings.
func NewSMTPSender(cfg config.SMTP) Sender { return &smtpSender{cfg: cfg} }

func (s *smtpSender) Send(recipient, subject, body string, attachment *Attachment) error {
	if s.cfg.Host == "" || s.cfg.FromEmail == "" || recipient == "" {
		return ErrIncompleteConfig
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if attachment != nil {
		m.Attach(attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment.Content)
			return err
		}))
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	d.SSL = s.cfg.SSL
	if !s.cfg.SSL {
		d.TLSConfig = &tls.Config{ServerName: s.cfg.Host}
	}
	return d.DialAndSend(m)
}
