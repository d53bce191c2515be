package reminder

import (
	"context"
	"time"
)

// Notifier delivers a payload at or after a point in time, at least once.
//
//go:generate mockgen -source=reminder_notifier.go -destination=mock/reminder_notifier_mock.go -package=mock
type Notifier interface {
	ScheduleAt(ctx context.Context, id string, payload Payload, at time.Time) (string, error)
	Cancel(ctx context.Context, id string) error
	// CancelAll drops the user's entries matching filter; a nil filter drops them all.
	CancelAll(ctx context.Context, userID string, filter func(Payload) bool) error
}
