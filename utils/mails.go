package utils

import (
	"fmt"
	"net/smtp"

	"amusicbible-backend/config"
)

// Mailer delivers a pre-rendered RFC 822 message to a single recipient.
type Mailer interface {
	Send(to string, message []byte) error
}

type SMTPMailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewSMTPMailer(cfg config.Mail) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		from:     cfg.From,
		username: cfg.Username,
		password: cfg.Password,
	}
}

func (m *SMTPMailer) Send(to string, message []byte) error {
	if m.username == "" {
		return fmt.Errorf("smtp credentials not configured")
	}
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	header := []byte("From: " + m.from + "\r\nTo: " + to + "\r\n")
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, append(header, message...)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	Logger.WithField("source", "mail").Info("Email sent")
	return nil
}
