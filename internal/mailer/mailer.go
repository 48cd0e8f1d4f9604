package mailer

import (
	"strconv"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/lin-hy/gangcheng-bnb/config"
)

// Mailer delivers notification emails over SMTP. When no SMTP host is
// configured it only logs the message, which keeps local setups working.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *Mailer {
	m := &Mailer{
		from:   cfg.MailFrom,
		logger: logger,
	}
	if cfg.SMTPHost != "" {
		port, err := strconv.Atoi(cfg.SMTPPort)
		if err != nil || port == 0 {
			port = 587
		}
		m.dialer = gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return m
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.dialer == nil {
		m.logger.Info("smtp not configured, logging mail instead",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
