// Package smtp delivers transactional email over SMTP.
package smtp

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"noteshare/internal/noteshare/ports/services"
	"noteshare/pkg/logger"
)

// Log and error messages.
const (
	LogSendingEmail = "sending email"
	LogEmailSent    = "email sent"

	ErrSendEmail = "failed to send email"
)

// Config holds the SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender implements services.EmailSender over net/smtp.
type Sender struct {
	cfg Config
}

// NewSender creates a new SMTP email sender.
func NewSender(cfg Config) services.EmailSender {
	return &Sender{cfg: cfg}
}

// Send delivers one HTML email to the recipient.
func (s *Sender) Send(ctx context.Context, to, subject, html string) error {
	log := logger.Log(ctx).With(zap.String("sender", "smtp"))
	log.Debug(ctx, LogSendingEmail, zap.String("to", to), zap.String("subject", subject))

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	message := "From: " + s.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		html

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(message)); err != nil {
		log.Error(ctx, ErrSendEmail, zap.String("to", to), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrSendEmail, err)
	}

	log.Info(ctx, LogEmailSent, zap.String("to", to))
	return nil
}
