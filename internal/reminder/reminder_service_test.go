package reminder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-attendo/internal/kvstore"
	"go-attendo/internal/notifier"
	"go-attendo/internal/reminder"
	remindererrors "go-attendo/internal/reminder/errors"
	"go-attendo/internal/reminder/mock"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/clock"
	"go-attendo/internal/shared/locker"
	"go-attendo/internal/shift"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeFinder struct {
	active *shift.Shift
	err    error
}

func (f *fakeFinder) FindActive(context.Context, string) (*shift.Shift, error) {
	return f.active, f.err
}

type serviceDeps struct {
	store  *kvstore.MemoryStore
	queue  *notifier.MemoryQueue
	finder *fakeFinder
	clock  *clock.Fixed
	svc    reminder.Service
}

// Monday 2026-10-19 06:00 UTC.
var monday = time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC)

func setupService() serviceDeps {
	store := kvstore.NewMemoryStore()
	queue := notifier.NewMemoryQueue()
	finder := &fakeFinder{}
	clk := clock.NewFixed(monday)
	svc := reminder.NewService(
		reminder.NewRepository(store),
		queue,
		finder,
		clk,
		locker.New(),
		reminder.PolicyBefore15Min,
	)
	return serviceDeps{store: store, queue: queue, finder: finder, clock: clk, svc: svc}
}

func office(id string) shift.Shift {
	return shift.Shift{
		ID:               id,
		Name:             "Office " + id,
		StartWorkTime:    "09:00",
		EndWorkTime:      "18:00",
		DepartureTime:    "08:15",
		RemindBeforeWork: 15,
		RemindAfterWork:  30,
		AppliedDays:      []int{1, 2, 3, 4, 5},
		Active:           true,
	}
}

func pendingIDs(q *notifier.MemoryQueue) []string {
	var ids []string
	for _, d := range q.Pending() {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestService_Schedule(t *testing.T) {
	ctx := context.Background()

	t.Run("schedules future triggers", func(t *testing.T) {
		deps := setupService()

		assert.NoError(t, deps.svc.Schedule(ctx, "u1", office("s1")))

		list, err := deps.svc.List(ctx, "u1")
		assert.NoError(t, err)
		if assert.Len(t, list, 3) {
			assert.Equal(t, "u1:s1:departure", list[0].ID)
			assert.Equal(t, reminder.TypeCheckIn, list[1].Type)
			assert.True(t, list[2].ScheduledTime.Equal(time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC)))
		}
		assert.Equal(t, []string{"u1:s1:departure", "u1:s1:check_in", "u1:s1:check_out"}, pendingIDs(deps.queue))
	})

	t.Run("scheduling twice yields one set", func(t *testing.T) {
		deps := setupService()

		assert.NoError(t, deps.svc.Schedule(ctx, "u1", office("s1")))
		first, _ := deps.svc.List(ctx, "u1")
		firstPending := deps.queue.Pending()

		assert.NoError(t, deps.svc.Schedule(ctx, "u1", office("s1")))
		second, _ := deps.svc.List(ctx, "u1")

		assert.Equal(t, first, second)
		assert.Equal(t, firstPending, deps.queue.Pending())
	})

	t.Run("stale triggers of the shift are removed", func(t *testing.T) {
		deps := setupService()
		assert.NoError(t, deps.svc.Schedule(ctx, "u1", office("s1")))

		deps.clock.Set(monday.Add(3 * time.Hour))
		assert.NoError(t, deps.svc.Schedule(ctx, "u1", office("s1")))

		assert.Equal(t, []string{"u1:s1:check_out"}, pendingIDs(deps.queue))
		list, _ := deps.svc.List(ctx, "u1")
		assert.Len(t, list, 1)
	})

	t.Run("notifier failure is reported but not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := mock.NewMockNotifier(ctrl)
		store := kvstore.NewMemoryStore()
		svc := reminder.NewService(reminder.NewRepository(store), n, &fakeFinder{}, clock.NewFixed(monday), nil, reminder.PolicyNone)

		n.EXPECT().CancelAll(gomock.Any(), "u1", gomock.Any()).Return(nil)
		n.EXPECT().ScheduleAt(gomock.Any(), "u1:s1:departure", gomock.Any(), gomock.Any()).Return("", errors.New("rejected"))
		n.EXPECT().ScheduleAt(gomock.Any(), "u1:s1:check_in", gomock.Any(), gomock.Any()).Return("u1:s1:check_in", nil)
		n.EXPECT().ScheduleAt(gomock.Any(), "u1:s1:check_out", gomock.Any(), gomock.Any()).Return("u1:s1:check_out", nil)

		err := svc.Schedule(ctx, "u1", office("s1"))
		assert.ErrorIs(t, err, remindererrors.ErrSchedulingFailure)

		list, err := svc.List(ctx, "u1")
		assert.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestService_Schedule_PolicyLoadFailureCancelsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	n := mock.NewMockNotifier(ctrl)
	svc := reminder.NewService(repo, n, &fakeFinder{}, clock.NewFixed(monday), nil, reminder.PolicyBefore15Min)

	repo.EXPECT().FindAll(gomock.Any(), "u1").Return(map[string]reminder.ScheduledReminder{
		"u1:s1:check_in": {ID: "u1:s1:check_in", ShiftID: "s1", Type: reminder.TypeCheckIn},
	}, nil)
	repo.EXPECT().FindPolicy(gomock.Any(), "u1").Return(reminder.Policy(""), false, errors.New("redis down"))
	n.EXPECT().CancelAll(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	n.EXPECT().ScheduleAt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().SaveAll(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.Schedule(context.Background(), "u1", office("s1"))
	assert.Equal(t, apperror.CodeStorageFailure, apperror.CodeOf(err))
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("for action", func(t *testing.T) {
		deps := setupService()
		assert.NoError(t, deps.svc.Schedule(ctx, "u1", office("s1")))

		assert.NoError(t, deps.svc.CancelForAction(ctx, "u1", reminder.TypeCheckIn))

		assert.Equal(t, []string{"u1:s1:departure", "u1:s1:check_out"}, pendingIDs(deps.queue))
		list, _ := deps.svc.List(ctx, "u1")
		assert.Len(t, list, 2)
	})

	t.Run("for shift leaves other users alone", func(t *testing.T) {
		deps := setupService()
		assert.NoError(t, deps.svc.Schedule(ctx, "u1", office("s1")))
		assert.NoError(t, deps.svc.Schedule(ctx, "u2", office("s1")))

		assert.NoError(t, deps.svc.CancelForShift(ctx, "u1", "s1"))

		list, _ := deps.svc.List(ctx, "u1")
		assert.Empty(t, list)
		assert.Len(t, deps.queue.Pending(), 3)
		_, err := deps.store.Get(ctx, kvstore.UserKey("u1", kvstore.KeyScheduledReminders))
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("reschedule on activate drops every other shift", func(t *testing.T) {
		deps := setupService()
		assert.NoError(t, deps.svc.Schedule(ctx, "u1", office("s1")))

		evening := office("s2")
		evening.StartWorkTime = "13:00"
		evening.EndWorkTime = "22:00"
		evening.DepartureTime = ""
		assert.NoError(t, deps.svc.RescheduleOnActivate(ctx, "u1", evening))

		assert.Equal(t, []string{"u1:s2:check_in", "u1:s2:check_out"}, pendingIDs(deps.queue))
	})
}

func TestService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("schedules the active shift", func(t *testing.T) {
		deps := setupService()
		s := office("s1")
		deps.finder.active = &s

		list, err := deps.svc.Refresh(ctx, "u1")
		assert.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("no active shift clears everything", func(t *testing.T) {
		deps := setupService()
		assert.NoError(t, deps.svc.Schedule(ctx, "u1", office("s1")))

		list, err := deps.svc.Refresh(ctx, "u1")
		assert.NoError(t, err)
		assert.Empty(t, list)
		assert.Empty(t, deps.queue.Pending())
	})

	t.Run("lookup failure", func(t *testing.T) {
		deps := setupService()
		deps.finder.err = errors.New("redis down")

		_, err := deps.svc.Refresh(ctx, "u1")
		assert.Error(t, err)
	})
}

func TestService_MarkFired(t *testing.T) {
	ctx := context.Background()
	deps := setupService()
	assert.NoError(t, deps.svc.Schedule(ctx, "u1", office("s1")))

	assert.NoError(t, deps.svc.MarkFired(ctx, "u1", "u1:s1:departure"))
	assert.NoError(t, deps.svc.MarkFired(ctx, "u1", "u1:s1:departure"))

	list, _ := deps.svc.List(ctx, "u1")
	assert.Len(t, list, 2)
}

func TestService_Policy(t *testing.T) {
	ctx := context.Background()

	t.Run("default applies until set", func(t *testing.T) {
		deps := setupService()
		p, err := deps.svc.GetPolicy(ctx, "u1")
		assert.NoError(t, err)
		assert.Equal(t, reminder.PolicyBefore15Min, p)
	})

	t.Run("set reschedules the active shift", func(t *testing.T) {
		deps := setupService()
		s := office("s1")
		s.RemindAfterWork = 0
		deps.finder.active = &s

		list, err := deps.svc.SetPolicy(ctx, "u1", reminder.PolicyBefore5Min)
		assert.NoError(t, err)
		if assert.Len(t, list, 3) {
			assert.True(t, list[2].ScheduledTime.Equal(time.Date(2026, 10, 19, 18, 5, 0, 0, time.UTC)))
			assert.Equal(t, string(reminder.PolicyBefore5Min), list[2].ReminderType)
		}

		p, _ := deps.svc.GetPolicy(ctx, "u1")
		assert.Equal(t, reminder.PolicyBefore5Min, p)
	})

	t.Run("unknown policy", func(t *testing.T) {
		deps := setupService()
		_, err := deps.svc.SetPolicy(ctx, "u1", reminder.Policy("hourly"))
		assert.ErrorIs(t, err, remindererrors.ErrInvalidPolicy)
	})
}
