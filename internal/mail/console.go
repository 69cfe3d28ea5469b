package mail

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ConsoleSender renders messages to the log instead of delivering them.
// Sent messages are kept for inspection.
type ConsoleSender struct {
	logger *zap.Logger

	mu   sync.Mutex
	sent []Message
}

func NewConsoleSender(logger *zap.Logger) *ConsoleSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleSender{logger: logger}
}

func (c *ConsoleSender) Send(ctx context.Context, msg Message) error {
	body, err := Render(msg, time.Now())
	if err != nil {
		return err
	}
	c.logger.Info("email (console transport)",
		zap.String("from", msg.From.String()),
		zap.Int("recipients", len(msg.To)),
		zap.String("subject", msg.Subject),
		zap.ByteString("body", body),
	)

	c.mu.Lock()
	c.sent = append(c.sent, msg)
	c.mu.Unlock()
	return nil
}

func (c *ConsoleSender) Sent() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.sent...)
}
