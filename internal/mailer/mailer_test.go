package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"warsztat/internal/config"
)

func TestSend_MissingHost(t *testing.T) {
	s := NewSMTPSender(config.SMTP{FromEmail: "warsztat@example.com"})
	err := s.Send("szef@example.com", "temat", "treść", nil)
	assert.ErrorIs(t, err, ErrIncompleteConfig)
}

func TestSend_MissingSender(t *testing.T) {
	s := NewSMTPSender(config.SMTP{Host: "smtp.example.com", Port: 587})
	err := s.Send("szef@example.com", "temat", "treść", nil)
	assert.ErrorIs(t, err, ErrIncompleteConfig)
}

func TestSend_MissingRecipient(t *testing.T) {
	s := NewSMTPSender(config.SMTP{Host: "smtp.example.com", FromEmail: "warsztat@example.com"})
	err := s.Send("", "temat", "treść", nil)
	assert.ErrorIs(t, err, ErrIncompleteConfig)
}
