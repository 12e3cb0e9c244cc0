package notify

import (
	"context"
	"strings"

	"sopets-web/internal/platform/logger"
)

// Sender entrega un Message. No hay proveedor de email todavía: LogSender solo loguea.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

type LogSender struct {
	log logger.Logger
}

func NewLogSender(log logger.Logger) *LogSender {
	if log == nil {
		log = logger.Nop()
	}
	return &LogSender{log: log.With(map[string]any{"component": "notify"})}
}

func (s *LogSender) Send(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info("email sent", map[string]any{
		"to":      m.To,
		"subject": m.Subject,
		"bytes":   len(m.HTML),
	})
	return nil
}

// Mailer renderiza y envía; implementa registrations.Notifier.
type Mailer struct {
	sender Sender
}

func NewMailer(sender Sender) *Mailer {
	return &Mailer{sender: sender}
}

func (m *Mailer) SendThankYou(ctx context.Context, email, userName string) error {
	msg, err := RenderThankYou(email, strings.TrimSpace(userName))
	if err != nil {
		return err
	}
	return m.sender.Send(ctx, msg)
}

func (m *Mailer) SendWelcome(ctx context.Context, email string, d WelcomeData) error {
	msg, err := RenderWelcome(email, d)
	if err != nil {
		return err
	}
	return m.sender.Send(ctx, msg)
}
