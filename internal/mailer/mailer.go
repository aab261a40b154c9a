// Package mailer sends approval emails through an SMTP provider. Handlers
// depend on the Sender interface so tests can substitute a recording mock.
package mailer

import (
	"fmt"

	"campusconnect/internal/config"

	"github.com/wneessen/go-mail"
)

// Sender dispatches a single HTML email.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTP sends mail through a configured SMTP relay using go-mail.
type SMTP struct {
	cfg *config.Config
}

// NewSMTP creates an SMTP sender from application config.
func NewSMTP(cfg *config.Config) (*SMTP, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.SMTPFrom == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}
	return &SMTP{cfg: cfg}, nil
}

// Send composes and delivers one message. Dial failures surface to the
// caller; there is no retry here.
func (s *SMTP) Send(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if s.cfg.SMTPFromName != "" {
		if err := msg.FromFormat(s.cfg.SMTPFromName, s.cfg.SMTPFrom); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	} else {
		if err := msg.From(s.cfg.SMTPFrom); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(s.cfg.SMTPPort),
	}

	if s.cfg.SMTPTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		// Implicit TLS for 465, STARTTLS otherwise
		if s.cfg.SMTPPort == 465 {
			opts = append(opts, mail.WithSSL())
		}
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if s.cfg.SMTPUsername != "" && s.cfg.SMTPPassword != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.SMTPUsername),
			mail.WithPassword(s.cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(s.cfg.SMTPHost, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}
