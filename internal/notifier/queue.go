package notifier

import (
	"context"
	"time"

	"go-attendo/internal/reminder"
)

const defaultBatch = 50

// Due is a parked notification whose fire time has passed.
type Due struct {
	ID      string
	Payload reminder.Payload
	At      time.Time
}

// Queue is a Notifier whose entries are drained by the dispatcher.
// Ack only removes an entry that was not rescheduled since ListDue.
type Queue interface {
	reminder.Notifier
	ListDue(ctx context.Context, now time.Time, limit int) ([]Due, error)
	Ack(ctx context.Context, due ...Due) error
}
