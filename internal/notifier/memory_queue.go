package notifier

import (
	"context"
	"sort"
	"sync"
	"time"

	"go-attendo/internal/reminder"
)

// MemoryQueue is a process-local Queue for tests and the memory store driver.
type MemoryQueue struct {
	mu      sync.Mutex
	entries map[string]Due
}

func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{entries: make(map[string]Due)}
}

func (q *MemoryQueue) ScheduleAt(_ context.Context, id string, payload reminder.Payload, at time.Time) (string, error) {
	q.mu.Lock()
	q.entries[id] = Due{ID: id, Payload: payload, At: at}
	q.mu.Unlock()
	return id, nil
}

func (q *MemoryQueue) Cancel(_ context.Context, id string) error {
	q.mu.Lock()
	delete(q.entries, id)
	q.mu.Unlock()
	return nil
}

func (q *MemoryQueue) CancelAll(_ context.Context, userID string, filter func(reminder.Payload) bool) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for id, d := range q.entries {
		if d.Payload.UserID != userID {
			continue
		}
		if filter == nil || filter(d.Payload) {
			delete(q.entries, id)
		}
	}
	return nil
}

func (q *MemoryQueue) ListDue(_ context.Context, now time.Time, limit int) ([]Due, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var due []Due
	for _, d := range q.entries {
		if !d.At.After(now) {
			due = append(due, d)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].At.Before(due[j].At) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (q *MemoryQueue) Ack(_ context.Context, due ...Due) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, d := range due {
		if cur, ok := q.entries[d.ID]; ok && cur.At.Equal(d.At) {
			delete(q.entries, d.ID)
		}
	}
	return nil
}

// Pending lists every parked entry ordered by fire time.
func (q *MemoryQueue) Pending() []Due {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Due, 0, len(q.entries))
	for _, d := range q.entries {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].At.Equal(out[j].At) {
			return out[i].ID < out[j].ID
		}
		return out[i].At.Before(out[j].At)
	})
	return out
}
