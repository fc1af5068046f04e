package mailer

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"brandsite/internal/config"
)

// Message is a single outbound notification.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Mailer
type Mailer interface {
	Send(msg Message) error
}

// LogMailer writes the notification to the log instead of sending it. Used in
// every environment except prod; it cannot fail.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(msg Message) error {
	m.log.Info("email notification (not sent)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text),
	)

	return nil
}

// SMTPMailer delivers notifications over SMTP. Dialing happens per send; there
// is no retry and no timeout beyond the transport's own.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Secure

	return &SMTPMailer{
		dialer: d,
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(msg Message) error {
	const op = "mailer.SMTPMailer.Send"

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Text)

	if msg.HTML != "" {
		gm.AddAlternative("text/html", msg.HTML)
	}

	if err := m.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
