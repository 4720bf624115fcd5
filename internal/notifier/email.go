package notifier

import (
	"context"
	"fmt"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/config"

	"gopkg.in/gomail.v2"
)

type email struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewEmail(cfg config.SMTP) *email {
	return &email{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.User,
		to:     cfg.AdminEmail,
	}
}

// Send шлёт письмо с plain-text телом и HTML-альтернативой.
// gomail не умеет context, таймаут остаётся за SMTP-соединением.
func (e *email) Send(_ context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", e.to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := e.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
