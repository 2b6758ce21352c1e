// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"io"

	"hospital-booking/internal/config"

	"github.com/go-gomail/gomail"
	log "github.com/sirupsen/logrus"
)

// Attachment is an in-memory file sent along with a message.
type Attachment struct {
	Name string
	Data []byte
}

type Message struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New returns an SMTP mailer, or a mailer that only logs when no SMTP host
// is configured.
func New(cfg config.MailConfig) Mailer {
	if cfg.Host == "" {
		log.Warn("SMTP host not configured, outgoing mail will only be logged")
		return LogMailer{}
	}
	return &SMTPMailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

type SMTPMailer struct {
	from   string
	dialer *gomail.Dialer
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(compose(m.from, msg)); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	log.WithFields(log.Fields{"to": msg.To, "subject": msg.Subject}).Info("Email sent")
	return nil
}

func compose(from string, msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	for _, a := range msg.Attachments {
		data := a.Data
		m.Attach(a.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}
	return m
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	log.WithFields(log.Fields{
		"to":          msg.To,
		"subject":     msg.Subject,
		"attachments": len(msg.Attachments),
	}).Info(msg.Body)
	return nil
}
