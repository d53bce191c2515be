package reminder

import (
	"context"

	"go-attendo/internal/kvstore"
)

//go:generate mockgen -source=reminder_repo.go -destination=mock/reminder_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, userID string) (map[string]ScheduledReminder, error)
	SaveAll(ctx context.Context, userID string, reminders map[string]ScheduledReminder) error
	FindPolicy(ctx context.Context, userID string) (Policy, bool, error)
	SavePolicy(ctx context.Context, userID string, p Policy) error
}

type repository struct {
	store kvstore.Store
}

func NewRepository(store kvstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) FindAll(ctx context.Context, userID string) (map[string]ScheduledReminder, error) {
	reminders := map[string]ScheduledReminder{}
	if _, err := kvstore.GetJSON(ctx, r.store, kvstore.UserKey(userID, kvstore.KeyScheduledReminders), &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *repository) SaveAll(ctx context.Context, userID string, reminders map[string]ScheduledReminder) error {
	key := kvstore.UserKey(userID, kvstore.KeyScheduledReminders)
	if len(reminders) == 0 {
		return r.store.Delete(ctx, key)
	}
	return kvstore.SetJSON(ctx, r.store, key, reminders)
}

func (r *repository) FindPolicy(ctx context.Context, userID string) (Policy, bool, error) {
	var p Policy
	found, err := kvstore.GetJSON(ctx, r.store, kvstore.UserKey(userID, kvstore.KeyReminderPolicy), &p)
	if err != nil || !found {
		return "", false, err
	}
	return p, true, nil
}

func (r *repository) SavePolicy(ctx context.Context, userID string, p Policy) error {
	return kvstore.SetJSON(ctx, r.store, kvstore.UserKey(userID, kvstore.KeyReminderPolicy), p)
}
