package reminder

import (
	"context"
	"sort"

	remindererrors "go-attendo/internal/reminder/errors"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/clock"
	"go-attendo/internal/shared/contextutil"
	"go-attendo/internal/shared/locker"
	"go-attendo/internal/shift"

	"go.uber.org/zap"
)

// ActiveShiftFinder resolves the shift reminders are kept for.
type ActiveShiftFinder interface {
	FindActive(ctx context.Context, userID string) (*shift.Shift, error)
}

// Service keeps the Notifier schedule in line with the active shift.
// Schedule and the Cancel methods expect the caller to hold the user's lock;
// Refresh, SetPolicy, MarkFired and List take it themselves.
//
//go:generate mockgen -source=reminder_service.go -destination=mock/reminder_service_mock.go -package=mock
type Service interface {
	Schedule(ctx context.Context, userID string, s shift.Shift) error
	CancelForShift(ctx context.Context, userID, shiftID string) error
	CancelForAction(ctx context.Context, userID string, t Type) error
	RescheduleOnActivate(ctx context.Context, userID string, s shift.Shift) error
	Refresh(ctx context.Context, userID string) ([]ScheduledReminder, error)
	MarkFired(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]ScheduledReminder, error)
	GetPolicy(ctx context.Context, userID string) (Policy, error)
	SetPolicy(ctx context.Context, userID string, p Policy) ([]ScheduledReminder, error)
}

type service struct {
	repo          Repository
	notifier      Notifier
	shifts        ActiveShiftFinder
	clock         clock.Clock
	locks         *locker.Keyed
	defaultPolicy Policy
	logger        *zap.Logger
}

func NewService(
	repo Repository,
	notifier Notifier,
	shifts ActiveShiftFinder,
	clk clock.Clock,
	locks *locker.Keyed,
	defaultPolicy Policy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("reminder.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reminder.service")
	}
	if !defaultPolicy.Valid() {
		defaultPolicy = PolicyBefore15Min
	}
	if locks == nil {
		locks = locker.New()
	}
	return &service{
		repo:          repo,
		notifier:      notifier,
		shifts:        shifts,
		clock:         clk,
		locks:         locks,
		defaultPolicy: defaultPolicy,
		logger:        l,
	}
}

func (s *service) Schedule(ctx context.Context, userID string, sh shift.Shift) error {
	s.logger.Debug("schedule reminders requested",
		append(contextutil.Fields(ctx), zap.String("user_id", userID), zap.String("shift_id", sh.ID))...,
	)

	reminders, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		s.logger.Error("schedule reminders load failed", zap.String("user_id", userID), zap.Error(err))
		return apperror.Storage(err)
	}
	if reminders == nil {
		reminders = map[string]ScheduledReminder{}
	}
	// The policy is read before anything is cancelled.
	policy, err := s.policy(ctx, userID)
	if err != nil {
		s.logger.Error("schedule reminders policy load failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	failed := false
	for id, r := range reminders {
		if r.ShiftID == sh.ID {
			delete(reminders, id)
		}
	}
	if err := s.notifier.CancelAll(ctx, userID, matchShift(sh.ID)); err != nil {
		s.logger.Warn("schedule reminders cancel failed", zap.String("shift_id", sh.ID), zap.Error(err))
		failed = true
	}

	for _, t := range ComputeTriggers(sh, s.clock.Now(), policy) {
		id := NotificationID(userID, sh.ID, t.Type)
		payload := Payload{
			UserID:        userID,
			ShiftID:       sh.ID,
			Type:          t.Type,
			ScheduledTime: t.At,
			ReminderType:  t.ReminderType,
		}
		if _, err := s.notifier.ScheduleAt(ctx, id, payload, t.At); err != nil {
			s.logger.Warn("schedule reminder failed",
				zap.String("id", id),
				zap.Time("at", t.At),
				zap.Error(err),
			)
			failed = true
			continue
		}
		reminders[id] = ScheduledReminder{
			ID:            id,
			ShiftID:       sh.ID,
			Type:          t.Type,
			ScheduledTime: t.At,
			ReminderType:  t.ReminderType,
		}
	}

	if err := s.repo.SaveAll(ctx, userID, reminders); err != nil {
		s.logger.Error("schedule reminders persist failed", zap.String("user_id", userID), zap.Error(err))
		return apperror.Storage(err)
	}

	if failed {
		return remindererrors.ErrSchedulingFailure
	}
	s.logger.Info("schedule reminders success",
		zap.String("shift_id", sh.ID),
		zap.Int("count", len(reminders)),
	)
	return nil
}

func (s *service) CancelForShift(ctx context.Context, userID, shiftID string) error {
	return s.cancel(ctx, userID, "shift", func(r ScheduledReminder) bool { return r.ShiftID == shiftID },
		func() error { return s.notifier.CancelAll(ctx, userID, matchShift(shiftID)) })
}

func (s *service) CancelForAction(ctx context.Context, userID string, t Type) error {
	var ids []string
	return s.cancel(ctx, userID, string(t),
		func(r ScheduledReminder) bool {
			if r.Type == t {
				ids = append(ids, r.ID)
				return true
			}
			return false
		},
		func() error {
			var firstErr error
			for _, id := range ids {
				if err := s.notifier.Cancel(ctx, id); err != nil && firstErr == nil {
					firstErr = err
				}
			}
			return firstErr
		})
}

func (s *service) RescheduleOnActivate(ctx context.Context, userID string, sh shift.Shift) error {
	err := s.cancel(ctx, userID, "all", func(ScheduledReminder) bool { return true },
		func() error { return s.notifier.CancelAll(ctx, userID, nil) })
	if apperror.CodeOf(err) == apperror.CodeStorageFailure {
		return err
	}
	return s.Schedule(ctx, userID, sh)
}

// cancel drops matching bookkeeping, persists it and then asks the notifier.
func (s *service) cancel(
	ctx context.Context,
	userID, scope string,
	match func(ScheduledReminder) bool,
	notify func() error,
) error {
	reminders, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		s.logger.Error("cancel reminders load failed", zap.String("scope", scope), zap.Error(err))
		return apperror.Storage(err)
	}

	removed := 0
	for id, r := range reminders {
		if match(r) {
			delete(reminders, id)
			removed++
		}
	}
	if removed > 0 {
		if err := s.repo.SaveAll(ctx, userID, reminders); err != nil {
			s.logger.Error("cancel reminders persist failed", zap.String("scope", scope), zap.Error(err))
			return apperror.Storage(err)
		}
	}

	if err := notify(); err != nil {
		s.logger.Warn("cancel reminders notifier failed", zap.String("scope", scope), zap.Error(err))
		return remindererrors.ErrSchedulingFailure
	}

	s.logger.Debug("cancel reminders done",
		zap.String("user_id", userID),
		zap.String("scope", scope),
		zap.Int("removed", removed),
	)
	return nil
}

func (s *service) Refresh(ctx context.Context, userID string) ([]ScheduledReminder, error) {
	if userID == "" {
		return nil, remindererrors.ErrInvalidUserID
	}
	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.refresh(ctx, userID); err != nil && apperror.CodeOf(err) != apperror.CodeSchedulingFailure {
		return nil, err
	}
	return s.list(ctx, userID)
}

func (s *service) refresh(ctx context.Context, userID string) error {
	active, err := s.shifts.FindActive(ctx, userID)
	if err != nil {
		s.logger.Error("refresh reminders shift lookup failed", zap.String("user_id", userID), zap.Error(err))
		return apperror.Storage(err)
	}
	if active == nil {
		return s.cancel(ctx, userID, "all", func(ScheduledReminder) bool { return true },
			func() error { return s.notifier.CancelAll(ctx, userID, nil) })
	}
	return s.Schedule(ctx, userID, *active)
}

func (s *service) MarkFired(ctx context.Context, userID, id string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	reminders, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		return apperror.Storage(err)
	}
	if _, ok := reminders[id]; !ok {
		s.logger.Debug("fired reminder already gone", zap.String("id", id))
		return nil
	}
	delete(reminders, id)
	if err := s.repo.SaveAll(ctx, userID, reminders); err != nil {
		s.logger.Error("mark fired persist failed", zap.String("id", id), zap.Error(err))
		return apperror.Storage(err)
	}
	return nil
}

func (s *service) List(ctx context.Context, userID string) ([]ScheduledReminder, error) {
	if userID == "" {
		return nil, remindererrors.ErrInvalidUserID
	}
	unlock := s.locks.Lock(userID)
	defer unlock()
	return s.list(ctx, userID)
}

func (s *service) list(ctx context.Context, userID string) ([]ScheduledReminder, error) {
	reminders, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	out := make([]ScheduledReminder, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledTime.Before(out[j].ScheduledTime) })
	return out, nil
}

func (s *service) GetPolicy(ctx context.Context, userID string) (Policy, error) {
	if userID == "" {
		return "", remindererrors.ErrInvalidUserID
	}
	return s.policy(ctx, userID)
}

func (s *service) policy(ctx context.Context, userID string) (Policy, error) {
	p, found, err := s.repo.FindPolicy(ctx, userID)
	if err != nil {
		return "", apperror.Storage(err)
	}
	if !found || !p.Valid() {
		return s.defaultPolicy, nil
	}
	return p, nil
}

func (s *service) SetPolicy(ctx context.Context, userID string, p Policy) ([]ScheduledReminder, error) {
	if userID == "" {
		return nil, remindererrors.ErrInvalidUserID
	}
	if !p.Valid() {
		return nil, remindererrors.ErrInvalidPolicy
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.repo.SavePolicy(ctx, userID, p); err != nil {
		s.logger.Error("set policy persist failed", zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.Storage(err)
	}
	s.logger.Info("set policy success", zap.String("user_id", userID), zap.String("policy", string(p)))

	if err := s.refresh(ctx, userID); err != nil && apperror.CodeOf(err) != apperror.CodeSchedulingFailure {
		return nil, err
	}
	return s.list(ctx, userID)
}

func matchShift(shiftID string) func(Payload) bool {
	return func(p Payload) bool { return p.ShiftID == shiftID }
}
