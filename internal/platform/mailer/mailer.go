// Package mailer delivers transactional mail. The dev driver logs instead of
// sending, which is what local and CI environments use.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"

	"residesk/internal/pkg/config"
	"residesk/internal/pkg/errs"
)

type Mailer interface {
	SendOTP(ctx context.Context, to, code string) error
}

// New selects the driver from configuration. Unknown drivers fall back to dev
// so a misconfigured environment degrades to logging rather than erroring at
// boot.
func New(cfg config.MailConfig) Mailer {
	switch cfg.Driver {
	case "smtp":
		return &smtpMailer{cfg: cfg}
	case "mailersend":
		return &mailerSendMailer{
			cfg:    cfg,
			client: mailersend.NewMailersend(cfg.MailerSendAPIKey),
		}
	default:
		return &devMailer{}
	}
}

type devMailer struct{}

func (devMailer) SendOTP(_ context.Context, to, code string) error {
	slog.Info("otp mail (dev driver)", "to", to, "code", code)
	return nil
}

type smtpMailer struct {
	cfg config.MailConfig
}

func (m *smtpMailer) SendOTP(_ context.Context, to, code string) error {
	body := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: Your verification code",
		"",
		fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code),
	}, "\r\n")

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(body)); err != nil {
		return errs.Wrap(err, "failed to send otp mail")
	}
	return nil
}

type mailerSendMailer struct {
	cfg    config.MailConfig
	client *mailersend.Mailersend
}

func (m *mailerSendMailer) SendOTP(ctx context.Context, to, code string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(mailersend.From{Email: m.cfg.From, Name: m.cfg.FromName})
	message.SetRecipients([]mailersend.Recipient{{Email: to}})
	message.SetSubject("Your verification code")
	message.SetText(fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code))

	if _, err := m.client.Email.Send(ctx, message); err != nil {
		return errs.Wrap(err, "failed to send otp mail")
	}
	return nil
}
