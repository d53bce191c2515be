package shift

import (
	"context"

	"go-attendo/internal/kvstore"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, userID string) ([]Shift, error)
	FindActive(ctx context.Context, userID string) (*Shift, error)
	Save(ctx context.Context, userID string, shifts []Shift, extra ...kvstore.Op) error
}

type repository struct {
	store kvstore.Store
}

func NewRepository(store kvstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) FindAll(ctx context.Context, userID string) ([]Shift, error) {
	var shifts []Shift
	if _, err := kvstore.GetJSON(ctx, r.store, kvstore.UserKey(userID, kvstore.KeyShifts), &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *repository) FindActive(ctx context.Context, userID string) (*Shift, error) {
	shifts, err := r.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return activeOf(shifts), nil
}

// Save writes the shift list and the currentShift pointer, plus any extra ops, in one batch.
func (r *repository) Save(ctx context.Context, userID string, shifts []Shift, extra ...kvstore.Op) error {
	if shifts == nil {
		shifts = []Shift{}
	}
	ops := make([]kvstore.Op, 0, 2+len(extra))

	put, err := kvstore.Put(kvstore.UserKey(userID, kvstore.KeyShifts), shifts)
	if err != nil {
		return err
	}
	ops = append(ops, put)

	currentKey := kvstore.UserKey(userID, kvstore.KeyCurrentShift)
	if active := activeOf(shifts); active != nil {
		put, err = kvstore.Put(currentKey, active.ID)
		if err != nil {
			return err
		}
		ops = append(ops, put)
	} else {
		ops = append(ops, kvstore.Remove(currentKey))
	}

	ops = append(ops, extra...)
	return r.store.Batch(ctx, ops...)
}
