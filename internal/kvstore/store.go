package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("kvstore: key not found")

// Logical keys of the per-user state.
const (
	KeyShifts             = "shifts"
	KeyCurrentShift       = "currentShift"
	KeyWorkStatus         = "workStatus"
	KeyStatusHistory      = "statusHistory"
	KeyWeeklyStatus       = "weeklyStatus"
	KeyStatusDetails      = "statusDetails"
	KeyScheduledReminders = "scheduledReminders"
	KeyStatusTally        = "statusTally"
	KeyReminderPolicy     = "reminderPolicy"
)

// Store is the persistent key-value collaborator. Batch applies all ops or none.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Batch(ctx context.Context, ops ...Op) error
}

// Op is a single write inside a Batch.
type Op struct {
	Key    string
	Value  []byte
	Delete bool
}

// UserKey namespaces a logical key for one user.
func UserKey(userID, key string) string {
	return fmt.Sprintf("user:%s:%s", userID, key)
}

// Put marshals v into a set operation.
func Put(key string, v any) (Op, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Op{}, fmt.Errorf("kvstore: encode %s: %w", key, err)
	}
	return Op{Key: key, Value: b}, nil
}

// Remove builds a delete operation.
func Remove(key string) Op {
	return Op{Key: key, Delete: true}
}

// GetJSON decodes key into dst. found is false when the key is absent; dst is untouched then.
func GetJSON(ctx context.Context, s Store, key string, dst any) (found bool, err error) {
	b, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("kvstore: decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON marshals v and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	op, err := Put(key, v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, op.Value)
}
