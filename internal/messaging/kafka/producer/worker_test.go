package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-attendo/internal/events"
	"go-attendo/internal/notifier"
	"go-attendo/internal/reminder"
	"go-attendo/internal/shared/clock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeWriter struct {
	msgs []kafkago.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestDispatchDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(now)
	cfg := DispatchConfig{Topic: events.ReminderFiredTopic, BatchSize: 10}

	seed := func() *notifier.MemoryQueue {
		q := notifier.NewMemoryQueue()
		at := now.Add(-time.Minute)
		_, _ = q.ScheduleAt(ctx, "u1:s1:check_in", reminder.Payload{
			UserID:        "u1",
			ShiftID:       "s1",
			Type:          reminder.TypeCheckIn,
			ScheduledTime: at,
			ReminderType:  reminder.SourceShift,
		}, at)
		_, _ = q.ScheduleAt(ctx, "u1:s1:check_out", reminder.Payload{UserID: "u1", ShiftID: "s1", Type: reminder.TypeCheckOut}, now.Add(time.Hour))
		return q
	}

	t.Run("publishes then acks", func(t *testing.T) {
		q := seed()
		w := &fakeWriter{}

		sent, err := DispatchDue(ctx, q, w, clk, cfg, zap.NewNop())
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)

		if assert.Len(t, w.msgs, 1) {
			msg := w.msgs[0]
			assert.Equal(t, events.ReminderFiredTopic, msg.Topic)
			assert.Equal(t, "u1", string(msg.Key))

			var ev events.ReminderFiredEvent
			assert.NoError(t, json.Unmarshal(msg.Value, &ev))
			assert.Equal(t, "u1:s1:check_in", ev.NotificationID)
			assert.Equal(t, "check_in", ev.ReminderType)
			assert.Equal(t, events.ReminderFiredEventType, ev.EventType)
			assert.True(t, ev.FiredAt.Equal(now))
		}

		pending := q.Pending()
		assert.Len(t, pending, 1)
		assert.Equal(t, "u1:s1:check_out", pending[0].ID)
	})

	t.Run("publish failure keeps the reminder queued", func(t *testing.T) {
		q := seed()
		w := &fakeWriter{err: errors.New("broker down")}

		sent, err := DispatchDue(ctx, q, w, clk, cfg, zap.NewNop())
		assert.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Len(t, q.Pending(), 2)
	})

	t.Run("nothing due", func(t *testing.T) {
		w := &fakeWriter{}
		sent, err := DispatchDue(ctx, notifier.NewMemoryQueue(), w, clk, cfg, zap.NewNop())
		assert.NoError(t, err)
		assert.Zero(t, sent)
		assert.Empty(t, w.msgs)
	})
}
