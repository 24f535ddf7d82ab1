package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
)

// SMTPMailer sends HTML mail over plain SMTP. Delivery is fire-and-forget
// from the caller's point of view: no retry, no queue.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	logger   *logger.Logger
}

func NewSMTPMailer(host, port, username, password, from string, logger *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		logger:   logger,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.logger.Info("Mail sent", "to", to, "subject", subject)
	return nil
}

// NoopMailer logs instead of sending. Used when SMTP is not configured.
type NoopMailer struct {
	logger *logger.Logger
}

func NewNoopMailer(logger *logger.Logger) *NoopMailer {
	return &NoopMailer{logger: logger}
}

func (m *NoopMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.logger.Info("Mail delivery skipped, SMTP not configured", "to", to, "subject", subject)
	return nil
}
