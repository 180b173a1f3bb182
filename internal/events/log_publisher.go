package events

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to a structured logger.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher constructs a LogPublisher; a nil logger uses slog.Default.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, evt Event) error {
	p.logger.InfoContext(ctx, "reservation event",
		slog.String("event_id", evt.ID),
		slog.String("event_type", string(evt.Type)),
		slog.String("reservation_id", evt.Reservation.ID),
		slog.Int("room_id", evt.Reservation.RoomID),
	)
	return nil
}
