package sdk

import (
	"context"
	"log/slog"
)

//tinyjson:json
type Event struct {
	Kind      string `json:"kind"`
	Line      string `json:"line"`
	TxID      string `json:"tx"`
	Timestamp int64  `json:"ts"`
}

// Publisher receives committed events, e.g. a redis stream or a nats subject.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// EventLog writes the terse event lines to the structured log and fans them out to publishers.
// A nil *EventLog drops everything, so the contract works without any wiring.
type EventLog struct {
	logger     *slog.Logger
	publishers []Publisher
}

func NewEventLog(logger *slog.Logger, publishers ...Publisher) *EventLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLog{logger: logger, publishers: publishers}
}

// Log emits ev. Events are only logged after a successful commit, publish
// failures are reported but never undo state.
// Example payload: log.Log(ctx, sdk.Event{Kind: "pc", Line: "pc|owner:alice|id:0"})
func (l *EventLog) Log(ctx context.Context, ev Event) {
	if l == nil {
		return
	}
	l.logger.InfoContext(ctx, ev.Line,
		slog.String("event", ev.Kind),
		slog.String("tx", ev.TxID),
		slog.Int64("ts", ev.Timestamp),
	)
	for _, p := range l.publishers {
		if err := p.Publish(ctx, ev); err != nil {
			l.logger.WarnContext(ctx, "event publish failed",
				slog.String("event", ev.Kind),
				slog.String("tx", ev.TxID),
				slog.String("error", err.Error()),
			)
		}
	}
}
