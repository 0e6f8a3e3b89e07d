package notify

import (
	"context"

	"go.uber.org/zap"
)

// Mailer é a ponta de entrega. A implementação real fica fora deste serviço.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.log.Info("notification sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
