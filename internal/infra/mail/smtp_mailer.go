// Package mail delivers transactional mail over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"sayma/config"
	"sayma/internal/domain/service"
)

// smtpMailer implements service.Mailer over a plain SMTP relay.
type smtpMailer struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	return &smtpMailer{cfg: cfg.SMTP, logger: logger}
}

// SendOTP delivers a one-time login code.
func (m *smtpMailer) SendOTP(ctx context.Context, to, code string) error {
	subject := "Your admin login code"
	body := fmt.Sprintf(
		"<p>Your one-time login code is:</p><h2>%s</h2><p>It expires in 10 minutes. If you did not request this, ignore this email.</p>",
		code,
	)

	if err := m.send(ctx, to, subject, body); err != nil {
		m.logger.Error("Failed to send login code email",
			slog.String("to", to),
			slog.Any("error", err))

		return err
	}

	return nil
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	if m.cfg.Username == "" {
		return errors.New("mail: smtp username not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	from := fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	raw := buildRaw(from, to, subject, body)

	addr := m.cfg.Host + ":" + strconv.Itoa(m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	// Use implicit TLS for port 465, STARTTLS otherwise.
	if m.cfg.Port == 465 {
		return m.sendTLS(addr, auth, to, raw)
	}

	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, raw)
}

func (m *smtpMailer) sendTLS(addr string, auth smtp.Auth, to string, raw []byte) error {
	tlsCfg := &tls.Config{ServerName: m.cfg.Host}
	conn, err := tls.Dial("tcp", addr, tlsCfg)
	if err != nil {
		return errors.Wrap(err, "mail: TLS dial")
	}
	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = w.Write(raw)

	return err
}

func buildRaw(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}
