package workstatus

import (
	"context"

	"go-attendo/internal/kvstore"
)

//go:generate mockgen -source=workstatus_repo.go -destination=mock/workstatus_repo_mock.go -package=mock
type Repository interface {
	FindState(ctx context.Context, userID string) (*WorkState, error)
	FindHistory(ctx context.Context, userID string) ([]WorkStatusEntry, error)
	StateOp(userID string, state WorkState) (kvstore.Op, error)
	HistoryOp(userID string, history []WorkStatusEntry) (kvstore.Op, error)
	Commit(ctx context.Context, ops ...kvstore.Op) error
}

type repository struct {
	store kvstore.Store
}

func NewRepository(store kvstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) FindState(ctx context.Context, userID string) (*WorkState, error) {
	var state WorkState
	found, err := kvstore.GetJSON(ctx, r.store, kvstore.UserKey(userID, kvstore.KeyWorkStatus), &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

func (r *repository) FindHistory(ctx context.Context, userID string) ([]WorkStatusEntry, error) {
	var history []WorkStatusEntry
	if _, err := kvstore.GetJSON(ctx, r.store, kvstore.UserKey(userID, kvstore.KeyStatusHistory), &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (r *repository) StateOp(userID string, state WorkState) (kvstore.Op, error) {
	return kvstore.Put(kvstore.UserKey(userID, kvstore.KeyWorkStatus), state)
}

func (r *repository) HistoryOp(userID string, history []WorkStatusEntry) (kvstore.Op, error) {
	if len(history) == 0 {
		return kvstore.Remove(kvstore.UserKey(userID, kvstore.KeyStatusHistory)), nil
	}
	return kvstore.Put(kvstore.UserKey(userID, kvstore.KeyStatusHistory), history)
}

// Commit applies every op atomically.
func (r *repository) Commit(ctx context.Context, ops ...kvstore.Op) error {
	return r.store.Batch(ctx, ops...)
}
