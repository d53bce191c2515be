package workstatus_test

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"go-attendo/internal/aggregate"
	"go-attendo/internal/events"
	"go-attendo/internal/kvstore"
	"go-attendo/internal/notifier"
	"go-attendo/internal/reminder"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/clock"
	"go-attendo/internal/shared/locker"
	"go-attendo/internal/shift"
	"go-attendo/internal/workstatus"
	statuserrors "go-attendo/internal/workstatus/errors"
	"go-attendo/internal/workstatus/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// Monday 2026-10-19.
func at(day, hour, minute int) time.Time {
	return time.Date(2026, 10, day, hour, minute, 0, 0, time.UTC)
}

func office() shift.Shift {
	return shift.Shift{
		ID:               "s1",
		Name:             "Office",
		StartWorkTime:    "09:00",
		EndWorkTime:      "18:00",
		DepartureTime:    "08:15",
		RemindBeforeWork: 15,
		RemindAfterWork:  30,
		AppliedDays:      []int{1, 2, 3, 4, 5},
		Active:           true,
	}
}

type serviceDeps struct {
	store     *kvstore.MemoryStore
	clock     *clock.Fixed
	reminders *mock.MockReminderManager
	views     aggregate.Repository
	svc       workstatus.Service
}

func setupService(t *testing.T, now time.Time, shifts ...shift.Shift) serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := kvstore.NewMemoryStore()
	shiftRepo := shift.NewRepository(store)
	if len(shifts) > 0 {
		assert.NoError(t, shiftRepo.Save(context.Background(), "u1", shifts))
	}

	clk := clock.NewFixed(now)
	reminders := mock.NewMockReminderManager(ctrl)
	views := aggregate.NewRepository(store)
	svc := workstatus.NewService(
		workstatus.NewRepository(store),
		views,
		shiftRepo,
		reminders,
		clk,
		locker.New(),
	)
	return serviceDeps{store: store, clock: clk, reminders: reminders, views: views, svc: svc}
}

func dump(t *testing.T, store *kvstore.MemoryStore) map[string]string {
	t.Helper()
	keys := store.Keys()
	sort.Strings(keys)
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := store.Get(context.Background(), k)
		assert.NoError(t, err)
		out[k] = string(v)
	}
	return out
}

func TestService_PerformAction_FullDay(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t, at(19, 8, 0), office())

	deps.reminders.EXPECT().CancelForAction(gomock.Any(), "u1", reminder.TypeDeparture).Return(nil)
	status, err := deps.svc.PerformAction(ctx, "u1", workstatus.ActionGoWork, false)
	assert.NoError(t, err)
	assert.Equal(t, workstatus.StatusGoWork, status.Status)
	assert.Equal(t, workstatus.ActionCheckIn, status.NextAction)
	assert.Equal(t, aggregate.CodeIncomplete, status.Detail.Status)

	deps.clock.Set(at(19, 8, 2))
	_, err = deps.svc.PerformAction(ctx, "u1", workstatus.ActionCheckIn, false)
	assert.ErrorIs(t, err, statuserrors.ErrConfirmationRequired)

	today, err := deps.svc.GetTodayStatus(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, today.Entries, 1)

	deps.clock.Set(at(19, 9, 0))
	deps.reminders.EXPECT().CancelForAction(gomock.Any(), "u1", reminder.TypeCheckIn).Return(nil)
	status, err = deps.svc.PerformAction(ctx, "u1", workstatus.ActionCheckIn, false)
	assert.NoError(t, err)
	assert.Equal(t, workstatus.StatusCheckIn, status.Status)
	assert.Equal(t, aggregate.CodeIncomplete, status.Detail.Status)
	assert.False(t, status.Detail.LateCheckIn)

	deps.clock.Set(at(19, 18, 0))
	deps.reminders.EXPECT().CancelForAction(gomock.Any(), "u1", reminder.TypeCheckOut).Return(nil)
	status, err = deps.svc.PerformAction(ctx, "u1", workstatus.ActionCheckOut, false)
	assert.NoError(t, err)
	assert.Equal(t, aggregate.CodeFull, status.Detail.Status)
	assert.Equal(t, 9.0, status.Detail.RegularHours)
	assert.Nil(t, status.Detail.TotalHours)

	deps.clock.Set(at(19, 18, 5))
	status, err = deps.svc.PerformAction(ctx, "u1", workstatus.ActionComplete, false)
	assert.NoError(t, err)
	assert.Equal(t, workstatus.StatusCompleted, status.Status)
	assert.Equal(t, workstatus.Action(""), status.NextAction)
	if assert.NotNil(t, status.Detail.TotalHours) {
		assert.Equal(t, 9.0, *status.Detail.TotalHours)
	}
	assert.Len(t, status.Entries, 4)

	_, err = deps.svc.PerformAction(ctx, "u1", workstatus.ActionGoWork, false)
	assert.ErrorIs(t, err, statuserrors.ErrDayCompleted)

	v, err := deps.views.Load(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, aggregate.CodeFull, v.Weekly["2026-10-19"])
	assert.Equal(t, aggregate.Tally{DaysFullWork: 1, RegularHours: 9}, v.Tallies.Weeks["2026-W43"])
	assert.Equal(t, aggregate.Rebuild(v.Details), v.Tallies)
}

func TestService_PerformAction_LateCheckIn(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t, at(19, 8, 0), office())
	deps.reminders.EXPECT().CancelForAction(gomock.Any(), "u1", gomock.Any()).Return(nil).AnyTimes()

	_, err := deps.svc.PerformAction(ctx, "u1", workstatus.ActionGoWork, false)
	assert.NoError(t, err)

	deps.clock.Set(at(19, 9, 20))
	status, err := deps.svc.PerformAction(ctx, "u1", workstatus.ActionCheckIn, false)
	assert.NoError(t, err)
	assert.True(t, status.Detail.LateCheckIn)

	deps.clock.Set(at(19, 18, 0))
	status, err = deps.svc.PerformAction(ctx, "u1", workstatus.ActionCheckOut, false)
	assert.NoError(t, err)
	assert.Equal(t, aggregate.CodeIrregular, status.Detail.Status)
}

func TestService_PerformAction_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("prerequisite missing writes nothing", func(t *testing.T) {
		deps := setupService(t, at(19, 9, 0))

		_, err := deps.svc.PerformAction(ctx, "u1", workstatus.ActionCheckIn, false)

		assert.ErrorIs(t, err, statuserrors.ErrPrerequisiteMissing)
		assert.Empty(t, deps.store.Keys())
	})

	t.Run("backwards transition keeps history", func(t *testing.T) {
		deps := setupService(t, at(19, 8, 0))
		deps.reminders.EXPECT().CancelForAction(gomock.Any(), "u1", gomock.Any()).Return(nil).Times(2)

		_, err := deps.svc.PerformAction(ctx, "u1", workstatus.ActionGoWork, false)
		assert.NoError(t, err)
		_, err = deps.svc.PerformAction(ctx, "u1", workstatus.ActionCheckIn, true)
		assert.NoError(t, err)
		before := dump(t, deps.store)

		_, err = deps.svc.PerformAction(ctx, "u1", workstatus.ActionGoWork, false)

		assert.ErrorIs(t, err, statuserrors.ErrInvalidTransition)
		assert.Equal(t, before, dump(t, deps.store))
	})

	t.Run("invalid input", func(t *testing.T) {
		deps := setupService(t, at(19, 8, 0))

		_, err := deps.svc.PerformAction(ctx, "", workstatus.ActionGoWork, false)
		assert.ErrorIs(t, err, statuserrors.ErrInvalidUserID)

		_, err = deps.svc.PerformAction(ctx, "u1", workstatus.Action("lunch"), false)
		assert.ErrorIs(t, err, statuserrors.ErrInvalidAction)
	})
}

func TestService_PerformAction_ReminderFailureIsNotFatal(t *testing.T) {
	deps := setupService(t, at(19, 8, 0), office())
	deps.reminders.EXPECT().
		CancelForAction(gomock.Any(), "u1", reminder.TypeDeparture).
		Return(errors.New("queue unavailable"))

	status, err := deps.svc.PerformAction(context.Background(), "u1", workstatus.ActionGoWork, false)

	assert.NoError(t, err)
	assert.Equal(t, workstatus.StatusGoWork, status.Status)
}

func TestService_PerformAction_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	reminders := mock.NewMockReminderManager(ctrl)
	shifts := mock.NewMockActiveShiftFinder(ctrl)
	store := kvstore.NewMemoryStore()

	repo.EXPECT().FindState(gomock.Any(), "u1").Return(nil, nil)
	repo.EXPECT().FindHistory(gomock.Any(), "u1").Return(nil, nil)
	repo.EXPECT().HistoryOp("u1", gomock.Len(1)).Return(kvstore.Op{Key: "h"}, nil)
	repo.EXPECT().StateOp("u1", gomock.Any()).Return(kvstore.Op{Key: "s"}, nil)
	repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	shifts.EXPECT().FindActive(gomock.Any(), "u1").Return(nil, nil)

	svc := workstatus.NewService(repo, aggregate.NewRepository(store), shifts, reminders, clock.NewFixed(at(19, 8, 0)), locker.New())

	_, err := svc.PerformAction(context.Background(), "u1", workstatus.ActionGoWork, false)

	assert.Equal(t, apperror.CodeStorageFailure, apperror.CodeOf(err))
	assert.Empty(t, store.Keys())
}

func TestService_NeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t, at(19, 8, 0))
	deps.reminders.EXPECT().CancelForAction(gomock.Any(), "u1", gomock.Any()).Return(nil)

	_, err := deps.svc.PerformAction(ctx, "u1", workstatus.ActionGoWork, false)
	assert.NoError(t, err)

	deps.clock.Set(at(19, 8, 3))
	conf, err := deps.svc.NeedsConfirmation(ctx, "u1", workstatus.ActionCheckIn)
	assert.NoError(t, err)
	assert.True(t, conf.Required)
	assert.NotEmpty(t, conf.Reason)

	deps.clock.Set(at(19, 8, 6))
	conf, err = deps.svc.NeedsConfirmation(ctx, "u1", workstatus.ActionCheckIn)
	assert.NoError(t, err)
	assert.False(t, conf.Required)
}

func TestService_ResetDay(t *testing.T) {
	ctx := context.Background()

	t.Run("today twice equals once", func(t *testing.T) {
		deps := setupService(t, at(19, 8, 0), office())
		deps.reminders.EXPECT().CancelForAction(gomock.Any(), "u1", gomock.Any()).Return(nil).Times(2)
		deps.reminders.EXPECT().Schedule(gomock.Any(), "u1", office()).Return(nil).Times(2)

		_, err := deps.svc.PerformAction(ctx, "u1", workstatus.ActionGoWork, false)
		assert.NoError(t, err)
		_, err = deps.svc.PerformAction(ctx, "u1", workstatus.ActionCheckIn, true)
		assert.NoError(t, err)

		status, err := deps.svc.ResetDay(ctx, "u1", "2026-10-19")
		assert.NoError(t, err)
		assert.Equal(t, workstatus.StatusInactive, status.Status)
		assert.Empty(t, status.Entries)
		assert.Equal(t, aggregate.CodeNoData, status.Detail.Status)
		once := dump(t, deps.store)

		_, err = deps.svc.ResetDay(ctx, "u1", "2026-10-19")
		assert.NoError(t, err)
		assert.Equal(t, once, dump(t, deps.store))

		_, err = deps.svc.PerformAction(ctx, "u1", workstatus.ActionCheckIn, true)
		assert.ErrorIs(t, err, statuserrors.ErrPrerequisiteMissing)
	})

	t.Run("clears a manual override", func(t *testing.T) {
		deps := setupService(t, at(19, 8, 0))
		v := aggregate.NewView()
		v.Apply("2026-10-16", &aggregate.DayStatusDetail{Date: "2026-10-16", Status: aggregate.CodeSick, ManualOverride: true})
		assert.NoError(t, deps.views.Save(ctx, "u1", v))

		_, err := deps.svc.ResetDay(ctx, "u1", "2026-10-16")
		assert.NoError(t, err)

		v, err = deps.views.Load(ctx, "u1")
		assert.NoError(t, err)
		assert.Empty(t, v.Details)
		assert.Empty(t, v.Tallies.Months)
	})

	t.Run("another day keeps today's state", func(t *testing.T) {
		deps := setupService(t, at(18, 10, 0), office())
		deps.reminders.EXPECT().CancelForAction(gomock.Any(), "u1", gomock.Any()).Return(nil).Times(2)

		_, err := deps.svc.PerformAction(ctx, "u1", workstatus.ActionGoWork, false)
		assert.NoError(t, err)

		deps.clock.Set(at(19, 8, 0))
		_, err = deps.svc.PerformAction(ctx, "u1", workstatus.ActionGoWork, false)
		assert.NoError(t, err)

		status, err := deps.svc.ResetDay(ctx, "u1", "2026-10-18")
		assert.NoError(t, err)
		assert.Equal(t, workstatus.StatusGoWork, status.Status)
		assert.Len(t, status.Entries, 1)
	})

	t.Run("bad date", func(t *testing.T) {
		deps := setupService(t, at(19, 8, 0))
		_, err := deps.svc.ResetDay(ctx, "u1", "19-10-2026")
		assert.ErrorIs(t, err, statuserrors.ErrInvalidDate)
	})
}

func TestService_HandleReminderFired(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t, at(19, 8, 0), office())
	deps.reminders.EXPECT().CancelForAction(gomock.Any(), "u1", reminder.TypeDeparture).Return(nil)

	_, err := deps.svc.PerformAction(ctx, "u1", workstatus.ActionGoWork, false)
	assert.NoError(t, err)
	before := dump(t, deps.store)

	for _, typ := range []string{"departure", "check_in", "lunch"} {
		err := deps.svc.HandleReminderFired(ctx, events.ReminderFiredEvent{
			EventType:      events.ReminderFiredEventType,
			NotificationID: "u1:s1:" + typ,
			UserID:         "u1",
			ShiftID:        "s1",
			ReminderType:   typ,
			ScheduledTime:  at(19, 8, 0),
			FiredAt:        at(19, 8, 0),
		})
		assert.NoError(t, err)
	}
	assert.Equal(t, before, dump(t, deps.store))
}

func TestService_CancelsLiveReminders(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	shiftRepo := shift.NewRepository(store)
	assert.NoError(t, shiftRepo.Save(ctx, "u1", []shift.Shift{office()}))

	clk := clock.NewFixed(at(19, 7, 0))
	locks := locker.New()
	queue := notifier.NewMemoryQueue()
	reminders := reminder.NewService(reminder.NewRepository(store), queue, shiftRepo, clk, locks, reminder.PolicyBefore15Min)
	_, err := reminders.Refresh(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, queue.Pending(), 3)

	svc := workstatus.NewService(workstatus.NewRepository(store), aggregate.NewRepository(store), shiftRepo, reminders, clk, locks)

	clk.Set(at(19, 7, 30))
	_, err = svc.PerformAction(ctx, "u1", workstatus.ActionGoWork, false)
	assert.NoError(t, err)

	var ids []string
	for _, d := range queue.Pending() {
		ids = append(ids, d.ID)
	}
	assert.ElementsMatch(t, []string{"u1:s1:check_in", "u1:s1:check_out"}, ids)

	left, err := reminders.List(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, left, 2)
}

func TestStatusResetter(t *testing.T) {
	store := kvstore.NewMemoryStore()
	resetter := workstatus.NewStatusResetter(workstatus.NewRepository(store), clock.NewFixed(at(19, 10, 0)))

	op, err := resetter.ResetStatusOp(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Equal(t, "user:u1:workStatus", op.Key)
	var state workstatus.WorkState
	assert.NoError(t, json.Unmarshal(op.Value, &state))
	assert.Equal(t, workstatus.StatusInactive, state.Status)
	assert.Equal(t, "2026-10-19", state.Date)
}
