package shift

import (
	"context"
	"strings"

	"go-attendo/internal/kvstore"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/contextutil"
	"go-attendo/internal/shared/locker"
	shifterrors "go-attendo/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler keeps reminders in line with the active shift.
type ReminderScheduler interface {
	Schedule(ctx context.Context, userID string, s Shift) error
	CancelForShift(ctx context.Context, userID, shiftID string) error
	RescheduleOnActivate(ctx context.Context, userID string, s Shift) error
}

// StatusResetter yields the write that puts the work status back to inactive.
type StatusResetter interface {
	ResetStatusOp(ctx context.Context, userID string) (kvstore.Op, error)
}

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, userID string) ([]Shift, error)
	GetByID(ctx context.Context, userID, id string) (Shift, error)
	GetActive(ctx context.Context, userID string) (*Shift, error)
	Add(ctx context.Context, userID string, req ShiftRequest) (Shift, error)
	Update(ctx context.Context, userID, id string, req ShiftRequest) (Shift, error)
	Delete(ctx context.Context, userID, id string) error
	Apply(ctx context.Context, userID, id string) (Shift, error)
}

type service struct {
	repo      Repository
	reminders ReminderScheduler
	resetter  StatusResetter
	locks     *locker.Keyed
	logger    *zap.Logger
}

func NewService(repo Repository, reminders ReminderScheduler, resetter StatusResetter, locks *locker.Keyed, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	if locks == nil {
		locks = locker.New()
	}
	return &service{repo: repo, reminders: reminders, resetter: resetter, locks: locks, logger: l}
}

func (s *service) GetAll(ctx context.Context, userID string) ([]Shift, error) {
	if userID == "" {
		return nil, shifterrors.ErrInvalidUserID
	}
	shifts, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		s.logger.Error("load shifts failed", append(contextutil.Fields(ctx), zap.Error(err))...)
		return nil, apperror.Storage(err)
	}
	if shifts == nil {
		shifts = []Shift{}
	}
	return shifts, nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (Shift, error) {
	shifts, err := s.GetAll(ctx, userID)
	if err != nil {
		return Shift{}, err
	}
	found, idx := findByID(shifts, id)
	if idx < 0 {
		return Shift{}, shifterrors.ErrShiftNotFound
	}
	return found, nil
}

func (s *service) GetActive(ctx context.Context, userID string) (*Shift, error) {
	active, err := s.repo.FindActive(ctx, userID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return active, nil
}

func (s *service) Add(ctx context.Context, userID string, req ShiftRequest) (Shift, error) {
	s.logger.Debug("add shift requested",
		append(contextutil.Fields(ctx), zap.String("user_id", userID), zap.String("name", req.Name))...,
	)
	if userID == "" {
		return Shift{}, shifterrors.ErrInvalidUserID
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	shifts, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		s.logger.Error("add shift load failed", zap.Error(err))
		return Shift{}, apperror.Storage(err)
	}

	created := req.toShift(uuid.New().String())
	created.Name = strings.TrimSpace(created.Name)
	if err := Validate(created, shifts); err != nil {
		s.logger.Warn("add shift validation failed", zap.String("user_id", userID), zap.Error(err))
		return Shift{}, err
	}
	if IsDuplicate(created, shifts) {
		s.logger.Warn("add shift duplicate configuration", zap.String("user_id", userID))
		return Shift{}, shifterrors.ErrDuplicateShift
	}

	next := append(append([]Shift(nil), shifts...), created)
	if err := s.repo.Save(ctx, userID, next); err != nil {
		s.logger.Error("add shift persist failed", zap.String("user_id", userID), zap.Error(err))
		return Shift{}, apperror.Storage(err)
	}

	s.logger.Info("add shift success", zap.String("user_id", userID), zap.String("shift_id", created.ID))
	return created, nil
}

func (s *service) Update(ctx context.Context, userID, id string, req ShiftRequest) (Shift, error) {
	s.logger.Debug("update shift requested", zap.String("user_id", userID), zap.String("shift_id", id))
	if userID == "" {
		return Shift{}, shifterrors.ErrInvalidUserID
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	shifts, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		s.logger.Error("update shift load failed", zap.Error(err))
		return Shift{}, apperror.Storage(err)
	}
	current, idx := findByID(shifts, id)
	if idx < 0 {
		return Shift{}, shifterrors.ErrShiftNotFound
	}

	updated := req.toShift(id)
	updated.Name = strings.TrimSpace(updated.Name)
	updated.Active = current.Active
	if err := Validate(updated, shifts); err != nil {
		s.logger.Warn("update shift validation failed", zap.String("shift_id", id), zap.Error(err))
		return Shift{}, err
	}
	if IsDuplicate(updated, shifts) {
		return Shift{}, shifterrors.ErrDuplicateShift
	}

	next := append([]Shift(nil), shifts...)
	next[idx] = updated
	if err := s.repo.Save(ctx, userID, next); err != nil {
		s.logger.Error("update shift persist failed", zap.String("shift_id", id), zap.Error(err))
		return Shift{}, apperror.Storage(err)
	}

	if updated.Active {
		if err := s.reminders.Schedule(ctx, userID, updated); err != nil {
			s.logger.Warn("update shift reschedule failed", zap.String("shift_id", id), zap.Error(err))
		}
	}

	s.logger.Info("update shift success", zap.String("shift_id", id))
	return updated, nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	s.logger.Debug("delete shift requested", zap.String("user_id", userID), zap.String("shift_id", id))
	if userID == "" {
		return shifterrors.ErrInvalidUserID
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	shifts, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		s.logger.Error("delete shift load failed", zap.Error(err))
		return apperror.Storage(err)
	}

	rest, removed, promoted, ok := remove(shifts, id)
	if !ok {
		return shifterrors.ErrShiftNotFound
	}

	if err := s.repo.Save(ctx, userID, rest); err != nil {
		s.logger.Error("delete shift persist failed", zap.String("shift_id", id), zap.Error(err))
		return apperror.Storage(err)
	}

	if err := s.reminders.CancelForShift(ctx, userID, removed.ID); err != nil {
		s.logger.Warn("delete shift cancel reminders failed", zap.String("shift_id", id), zap.Error(err))
	}
	if promoted != nil {
		if err := s.reminders.RescheduleOnActivate(ctx, userID, *promoted); err != nil {
			s.logger.Warn("delete shift reschedule promoted failed",
				zap.String("shift_id", promoted.ID),
				zap.Error(err),
			)
		}
		s.logger.Info("delete shift promoted next shift",
			zap.String("deleted_id", id),
			zap.String("promoted_id", promoted.ID),
		)
	}

	s.logger.Info("delete shift success", zap.String("shift_id", id))
	return nil
}

func (s *service) Apply(ctx context.Context, userID, id string) (Shift, error) {
	s.logger.Debug("apply shift requested", zap.String("user_id", userID), zap.String("shift_id", id))
	if userID == "" {
		return Shift{}, shifterrors.ErrInvalidUserID
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	shifts, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		s.logger.Error("apply shift load failed", zap.Error(err))
		return Shift{}, apperror.Storage(err)
	}

	previous := activeOf(shifts)
	next, found := activate(shifts, id)
	if !found {
		return Shift{}, shifterrors.ErrShiftNotFound
	}

	var extra []kvstore.Op
	switched := previous != nil && previous.ID != id
	if switched && s.resetter != nil {
		op, err := s.resetter.ResetStatusOp(ctx, userID)
		if err != nil {
			return Shift{}, apperror.Storage(err)
		}
		extra = append(extra, op)
	}

	if err := s.repo.Save(ctx, userID, next, extra...); err != nil {
		s.logger.Error("apply shift persist failed", zap.String("shift_id", id), zap.Error(err))
		return Shift{}, apperror.Storage(err)
	}

	applied, _ := findByID(next, id)
	if err := s.reminders.RescheduleOnActivate(ctx, userID, applied); err != nil {
		s.logger.Warn("apply shift reschedule failed", zap.String("shift_id", id), zap.Error(err))
	}

	s.logger.Info("apply shift success",
		zap.String("shift_id", id),
		zap.Bool("status_reset", switched),
	)
	return applied, nil
}
