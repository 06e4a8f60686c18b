// Package mail delivers password-reset notifications over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"

	"vault/config"
	"vault/internal/domain/service"
	"vault/internal/errors"
)

// smtpMailer sends reset mail through a plain SMTP relay.
type smtpMailer struct {
	cfg    *config.MailConfig
	logger *slog.Logger
}

// NewMailer is the constructor for the Mailer service. When mail is not
// configured it returns a logging stand-in so the reset flow still works in
// development.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return &logMailer{logger: logger}
	}

	return &smtpMailer{cfg: cfg.Mail, logger: logger}
}

// SendPasswordReset sends the reset token to the given address.
func (m *smtpMailer) SendPasswordReset(_ context.Context, email, token string) error {
	link := m.cfg.ResetBaseURL + "/" + token
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Reset your password\r\n\r\n"+
			"You can reset your password within the next 15 minutes:\r\n\r\n%s\r\n",
		m.cfg.From, email, link,
	)

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.UserName != "" {
		auth = smtp.PlainAuth("", m.cfg.UserName, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email}, []byte(body)); err != nil {
		return errors.Wrap(err, "failed to send password reset mail")
	}

	return nil
}

// logMailer records the reset token instead of delivering it.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	m.logger.InfoContext(ctx, "Mail delivery not configured, logging reset token",
		slog.String("email", email), slog.String("token", token))

	return nil
}
