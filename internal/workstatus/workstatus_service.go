package workstatus

import (
	"context"
	"time"

	"go-attendo/internal/aggregate"
	"go-attendo/internal/events"
	"go-attendo/internal/kvstore"
	"go-attendo/internal/reminder"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/clock"
	"go-attendo/internal/shared/locker"
	"go-attendo/internal/shift"
	statuserrors "go-attendo/internal/workstatus/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=workstatus_service.go -destination=mock/workstatus_service_mock.go -package=mock
type ActiveShiftFinder interface {
	FindActive(ctx context.Context, userID string) (*shift.Shift, error)
}

// ReminderManager is called with the per-user lock held.
type ReminderManager interface {
	Schedule(ctx context.Context, userID string, s shift.Shift) error
	CancelForAction(ctx context.Context, userID string, t reminder.Type) error
}

type Service interface {
	PerformAction(ctx context.Context, userID string, action Action, confirmed bool) (TodayStatus, error)
	NeedsConfirmation(ctx context.Context, userID string, action Action) (Confirmation, error)
	GetTodayStatus(ctx context.Context, userID string) (TodayStatus, error)
	ResetDay(ctx context.Context, userID, date string) (TodayStatus, error)
	HandleReminderFired(ctx context.Context, event events.ReminderFiredEvent) error
}

type service struct {
	repo      Repository
	views     aggregate.Repository
	shifts    ActiveShiftFinder
	reminders ReminderManager
	clock     clock.Clock
	locks     *locker.Keyed
	loads     singleflight.Group
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	views aggregate.Repository,
	shifts ActiveShiftFinder,
	reminders ReminderManager,
	clk clock.Clock,
	locks *locker.Keyed,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("workstatus.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workstatus.service")
	}
	if locks == nil {
		locks = locker.New()
	}
	return &service{
		repo:      repo,
		views:     views,
		shifts:    shifts,
		reminders: reminders,
		clock:     clk,
		locks:     locks,
		logger:    l,
	}
}

type snapshot struct {
	state   *WorkState
	history []WorkStatusEntry
	view    *aggregate.View
}

func (s *service) load(ctx context.Context, userID string) (snapshot, error) {
	state, err := s.repo.FindState(ctx, userID)
	if err != nil {
		return snapshot{}, err
	}
	history, err := s.repo.FindHistory(ctx, userID)
	if err != nil {
		return snapshot{}, err
	}
	view, err := s.views.Load(ctx, userID)
	if err != nil {
		return snapshot{}, err
	}
	return snapshot{state: state, history: history, view: view}, nil
}

// loadShared collapses concurrent read-only loads of one user.
func (s *service) loadShared(ctx context.Context, userID string) (snapshot, error) {
	v, err, _ := s.loads.Do(userID, func() (any, error) {
		return s.load(ctx, userID)
	})
	if err != nil {
		return snapshot{}, err
	}
	return v.(snapshot), nil
}

func (s *service) PerformAction(ctx context.Context, userID string, action Action, confirmed bool) (TodayStatus, error) {
	s.logger.Debug("perform action requested",
		zap.String("user_id", userID),
		zap.String("action", string(action)),
		zap.Bool("confirmed", confirmed),
	)
	if userID == "" {
		return TodayStatus{}, statuserrors.ErrInvalidUserID
	}
	if !action.Valid() {
		return TodayStatus{}, statuserrors.ErrInvalidAction
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	now := s.clock.Now()
	today := now.Format(aggregate.DateLayout)

	snap, err := s.load(ctx, userID)
	if err != nil {
		s.logger.Error("perform action load failed", zap.String("user_id", userID), zap.Error(err))
		return TodayStatus{}, apperror.Storage(err)
	}

	current := Current(snap.state, today)
	todays := EntriesOn(snap.history, today)
	if err := Check(current, todays, action, now, confirmed); err != nil {
		s.logger.Warn("perform action rejected",
			zap.String("current", string(current)),
			zap.String("action", string(action)),
			zap.String("code", apperror.CodeOf(err)),
		)
		return TodayStatus{}, err
	}

	active, err := s.shifts.FindActive(ctx, userID)
	if err != nil {
		s.logger.Error("perform action shift lookup failed", zap.Error(err))
		return TodayStatus{}, apperror.Storage(err)
	}

	entry := WorkStatusEntry{
		ID:        uuid.NewString(),
		Status:    Status(action),
		Date:      today,
		Timestamp: now,
	}
	history := append(append(make([]WorkStatusEntry, 0, len(snap.history)+1), snap.history...), entry)
	state := WorkState{Status: After(action), Date: today, UpdatedAt: now}

	todays = append(todays, entry)
	snap.view.Apply(today, aggregate.Derive(today, Steps(todays), active, snap.view.Detail(today)))

	ops, err := s.commitOps(userID, &state, history, snap.view)
	if err != nil {
		return TodayStatus{}, apperror.Storage(err)
	}
	if err := s.repo.Commit(ctx, ops...); err != nil {
		s.logger.Error("perform action persist failed",
			zap.String("user_id", userID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return TodayStatus{}, apperror.Storage(err)
	}

	if t, ok := ReminderFor(action); ok {
		if err := s.reminders.CancelForAction(ctx, userID, t); err != nil {
			s.logger.Warn("cancel reminder after action failed",
				zap.String("reminder_type", string(t)),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("perform action success",
		zap.String("user_id", userID),
		zap.String("action", string(action)),
		zap.String("status", string(state.Status)),
	)
	return todayStatus(snapshot{state: &state, history: history, view: snap.view}, today), nil
}

// commitOps renders the history, the state (when not nil) and the view into one batch.
func (s *service) commitOps(userID string, state *WorkState, history []WorkStatusEntry, view *aggregate.View) ([]kvstore.Op, error) {
	ops := make([]kvstore.Op, 0, 5)

	historyOp, err := s.repo.HistoryOp(userID, history)
	if err != nil {
		return nil, err
	}
	ops = append(ops, historyOp)

	if state != nil {
		stateOp, err := s.repo.StateOp(userID, *state)
		if err != nil {
			return nil, err
		}
		ops = append(ops, stateOp)
	}

	viewOps, err := s.views.Ops(userID, view)
	if err != nil {
		return nil, err
	}
	return append(ops, viewOps...), nil
}

func (s *service) NeedsConfirmation(ctx context.Context, userID string, action Action) (Confirmation, error) {
	if userID == "" {
		return Confirmation{}, statuserrors.ErrInvalidUserID
	}
	if !action.Valid() {
		return Confirmation{}, statuserrors.ErrInvalidAction
	}

	snap, err := s.loadShared(ctx, userID)
	if err != nil {
		return Confirmation{}, apperror.Storage(err)
	}
	now := s.clock.Now()
	return NeedsConfirmation(action, EntriesOn(snap.history, now.Format(aggregate.DateLayout)), now), nil
}

func (s *service) GetTodayStatus(ctx context.Context, userID string) (TodayStatus, error) {
	if userID == "" {
		return TodayStatus{}, statuserrors.ErrInvalidUserID
	}

	snap, err := s.loadShared(ctx, userID)
	if err != nil {
		s.logger.Error("today status load failed", zap.String("user_id", userID), zap.Error(err))
		return TodayStatus{}, apperror.Storage(err)
	}
	return todayStatus(snap, s.clock.Now().Format(aggregate.DateLayout)), nil
}

func (s *service) ResetDay(ctx context.Context, userID, date string) (TodayStatus, error) {
	s.logger.Debug("reset day requested", zap.String("user_id", userID), zap.String("date", date))
	if userID == "" {
		return TodayStatus{}, statuserrors.ErrInvalidUserID
	}
	now := s.clock.Now()
	day, err := time.ParseInLocation(aggregate.DateLayout, date, now.Location())
	if err != nil {
		return TodayStatus{}, statuserrors.ErrInvalidDate
	}
	today := now.Format(aggregate.DateLayout)

	unlock := s.locks.Lock(userID)
	defer unlock()

	snap, err := s.load(ctx, userID)
	if err != nil {
		s.logger.Error("reset day load failed", zap.Error(err))
		return TodayStatus{}, apperror.Storage(err)
	}
	active, err := s.shifts.FindActive(ctx, userID)
	if err != nil {
		return TodayStatus{}, apperror.Storage(err)
	}

	history := make([]WorkStatusEntry, 0, len(snap.history))
	for _, e := range snap.history {
		if e.Date != date {
			history = append(history, e)
		}
	}
	snap.view.Apply(date, nil)

	state, written := snap.state, (*WorkState)(nil)
	if date == today {
		written = &WorkState{Status: StatusInactive, Date: today, UpdatedAt: now}
		state = written
	}

	ops, err := s.commitOps(userID, written, history, snap.view)
	if err != nil {
		return TodayStatus{}, apperror.Storage(err)
	}
	if err := s.repo.Commit(ctx, ops...); err != nil {
		s.logger.Error("reset day persist failed", zap.String("date", date), zap.Error(err))
		return TodayStatus{}, apperror.Storage(err)
	}

	if active != nil && active.AppliesOn(day.Weekday()) {
		if err := s.reminders.Schedule(ctx, userID, *active); err != nil {
			s.logger.Warn("reschedule after reset failed", zap.String("shift_id", active.ID), zap.Error(err))
		}
	}

	s.logger.Info("reset day success",
		zap.String("user_id", userID),
		zap.String("date", date),
		zap.Int("removed", len(snap.history)-len(history)),
	)
	return todayStatus(snapshot{state: state, history: history, view: snap.view}, today), nil
}

// HandleReminderFired only logs; work state belongs to the user's own actions.
func (s *service) HandleReminderFired(ctx context.Context, event events.ReminderFiredEvent) error {
	action, ok := actionFor(reminder.Type(event.ReminderType))
	if !ok {
		s.logger.Warn("unknown reminder type fired", zap.String("reminder_type", event.ReminderType))
		return nil
	}

	snap, err := s.loadShared(ctx, event.UserID)
	if err != nil {
		return apperror.Storage(err)
	}

	date := event.ScheduledTime.In(s.clock.Now().Location()).Format(aggregate.DateLayout)
	current := Current(snap.state, date)
	if rank[current] >= rank[Status(action)] {
		s.logger.Info("reminder fired after action was performed, ignoring",
			zap.String("notification_id", event.NotificationID),
			zap.String("status", string(current)),
		)
		return nil
	}

	s.logger.Info("reminder fired",
		zap.String("notification_id", event.NotificationID),
		zap.String("user_id", event.UserID),
		zap.String("next_action", string(action)),
	)
	return nil
}

func todayStatus(snap snapshot, today string) TodayStatus {
	current := Current(snap.state, today)
	detail := aggregate.DayStatusDetail{Date: today, Status: aggregate.CodeNoData}
	if snap.view != nil {
		if d := snap.view.Detail(today); d != nil {
			detail = *d
		}
	}
	return TodayStatus{
		Date:       today,
		Status:     current,
		Entries:    EntriesOn(snap.history, today),
		Detail:     detail,
		NextAction: Next(current),
	}
}

type statusResetter struct {
	repo  Repository
	clock clock.Clock
}

// NewStatusResetter lets a shift switch put the day back to inactive inside its own batch.
func NewStatusResetter(repo Repository, clk clock.Clock) shift.StatusResetter {
	return &statusResetter{repo: repo, clock: clk}
}

func (r *statusResetter) ResetStatusOp(_ context.Context, userID string) (kvstore.Op, error) {
	now := r.clock.Now()
	return r.repo.StateOp(userID, WorkState{
		Status:    StatusInactive,
		Date:      now.Format(aggregate.DateLayout),
		UpdatedAt: now,
	})
}
