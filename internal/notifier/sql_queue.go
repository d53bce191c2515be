package notifier

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-attendo/internal/reminder"
)

type sqlQueue struct {
	db *sql.DB
}

// NewSQLQueue parks reminders in the reminder_queue table.
func NewSQLQueue(db *sql.DB) Queue {
	return &sqlQueue{db: db}
}

func (q *sqlQueue) ScheduleAt(ctx context.Context, id string, payload reminder.Payload, at time.Time) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode reminder payload: %w", err)
	}

	query := `
INSERT INTO reminder_queue (id, user_id, payload, fire_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET payload = EXCLUDED.payload,
	fire_at = EXCLUDED.fire_at
`
	if _, err := q.db.ExecContext(ctx, query, id, payload.UserID, b, at.UTC()); err != nil {
		return "", err
	}
	return id, nil
}

func (q *sqlQueue) Cancel(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM reminder_queue WHERE id = $1`, id)
	return err
}

func (q *sqlQueue) CancelAll(ctx context.Context, userID string, filter func(reminder.Payload) bool) error {
	if filter == nil {
		_, err := q.db.ExecContext(ctx, `DELETE FROM reminder_queue WHERE user_id = $1`, userID)
		return err
	}

	rows, err := q.db.QueryContext(ctx, `SELECT id, payload FROM reminder_queue WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	var ids []string
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			rows.Close()
			return err
		}
		var p reminder.Payload
		if err := json.Unmarshal(raw, &p); err != nil || filter(p) {
			ids = append(ids, id)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	if len(ids) == 0 {
		return nil
	}

	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, `DELETE FROM reminder_queue WHERE id = $1`, id); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (q *sqlQueue) ListDue(ctx context.Context, now time.Time, limit int) ([]Due, error) {
	query := `
SELECT id, payload, fire_at
FROM reminder_queue
WHERE fire_at <= $1
ORDER BY fire_at ASC
LIMIT $2
`
	if limit <= 0 {
		limit = defaultBatch
	}
	rows, err := q.db.QueryContext(ctx, query, now.UTC(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	due := make([]Due, 0, limit)
	for rows.Next() {
		var (
			d   Due
			raw []byte
		)
		if err := rows.Scan(&d.ID, &raw, &d.At); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &d.Payload); err != nil {
			return nil, fmt.Errorf("decode reminder %s: %w", d.ID, err)
		}
		due = append(due, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return due, nil
}

func (q *sqlQueue) Ack(ctx context.Context, due ...Due) error {
	for _, d := range due {
		_, err := q.db.ExecContext(ctx,
			`DELETE FROM reminder_queue WHERE id = $1 AND fire_at = $2`,
			d.ID, d.At.UTC(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
