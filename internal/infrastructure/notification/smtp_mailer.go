package notification

import (
	"context"
	"errors"
	"fmt"

	"lista_presentes/internal/infrastructure/config"
	"lista_presentes/internal/infrastructure/logging"
	"lista_presentes/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

var ErrMissingSMTPCredentials = errors.New("missing EMAIL_SENDER/EMAIL_PASSWORD/EMAIL_RECIPIENT")

const implicitTLSPort = 465

// SMTPMailer sends plaintext mail from the configured sender account to the
// registry owner. Port 465 uses implicit TLS, any other port requires
// STARTTLS.
type SMTPMailer struct {
	cfg      config.SMTPConfig
	mockMode bool
	send     func(ctx context.Context, msg *mail.Msg) error
}

var _ interfaces.INotifier = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	if cfg.Mock {
		logging.Log.Info("[email][mailer] mock mode enabled")
		return &SMTPMailer{cfg: cfg, mockMode: true}, nil
	}
	if cfg.Sender == "" || cfg.Password == "" || cfg.Recipient == "" {
		return nil, ErrMissingSMTPCredentials
	}

	client, err := mail.NewClient(cfg.Host, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	logging.Log.WithFields(logrus.Fields{"host": cfg.Host, "port": cfg.Port}).Info("[email][mailer] SMTP client initialized")

	return &SMTPMailer{
		cfg: cfg,
		send: func(ctx context.Context, msg *mail.Msg) error {
			return client.DialAndSendWithContext(ctx, msg)
		},
	}, nil
}

func clientOptions(cfg config.SMTPConfig) []mail.Option {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Sender),
		mail.WithPassword(cfg.Password),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	return opts
}

func (s *SMTPMailer) Send(ctx context.Context, subject, body string) error {
	msg, err := s.buildMessage(subject, body)
	if err != nil {
		return err
	}

	if s.mockMode {
		logging.Log.WithFields(logrus.Fields{"to": s.cfg.Recipient, "subject": subject}).
			Infof("[email][mailer] mock send body_len=%d", len(body))
		return nil
	}

	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *SMTPMailer) buildMessage(subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if s.cfg.Sender != "" {
		if err := msg.From(s.cfg.Sender); err != nil {
			return nil, fmt.Errorf("invalid sender: %w", err)
		}
	}
	if s.cfg.Recipient != "" {
		if err := msg.To(s.cfg.Recipient); err != nil {
			return nil, fmt.Errorf("invalid recipient: %w", err)
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}
