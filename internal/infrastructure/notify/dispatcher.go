package notify

import (
	"context"

	"go.uber.org/zap"
)

// Message is a fully-built notification payload. The core builds payload data
// only; delivery is this collaborator's concern.
type Message struct {
	Recipients  []string `json:"recipients"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	Attachments []string `json:"attachments,omitempty"`
}

type Dispatcher interface {
	Send(ctx context.Context, m Message) error
}

// LogDispatcher records the payload instead of delivering it. Deployments
// swap in an SMTP or webhook implementation behind the same interface.
type LogDispatcher struct{ log *zap.Logger }

func NewLogDispatcher(log *zap.Logger) *LogDispatcher { return &LogDispatcher{log: log} }

func (d *LogDispatcher) Send(_ context.Context, m Message) error {
	d.log.Info("notification dispatched",
		zap.Strings("recipients", m.Recipients),
		zap.String("subject", m.Subject),
		zap.Int("attachments", len(m.Attachments)))
	return nil
}
