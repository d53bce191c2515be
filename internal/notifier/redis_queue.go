package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-attendo/internal/reminder"

	"github.com/redis/go-redis/v9"
)

const (
	dueKey     = "reminders:due"
	payloadKey = "reminders:payload"
	scanCount  = 100
)

// ackScript drops ids whose score still matches the one handed out by ListDue.
var ackScript = redis.NewScript(`
local removed = 0
for i = 1, #ARGV, 2 do
  local score = redis.call('ZSCORE', KEYS[1], ARGV[i])
  if score and tonumber(score) == tonumber(ARGV[i + 1]) then
    redis.call('ZREM', KEYS[1], ARGV[i])
    redis.call('HDEL', KEYS[2], ARGV[i])
    removed = removed + 1
  end
end
return removed
`)

type redisQueue struct {
	rdb *redis.Client
}

// NewRedisQueue parks reminders in a sorted set scored by fire time, with the
// payloads in a companion hash.
func NewRedisQueue(rdb *redis.Client) Queue {
	return &redisQueue{rdb: rdb}
}

func (q *redisQueue) ScheduleAt(ctx context.Context, id string, payload reminder.Payload, at time.Time) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode reminder payload: %w", err)
	}
	_, err = q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, dueKey, redis.Z{Score: float64(at.Unix()), Member: id})
		pipe.HSet(ctx, payloadKey, id, b)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (q *redisQueue) Cancel(ctx context.Context, id string) error {
	return q.remove(ctx, id)
}

// CancelAll scans only the payload fields prefixed with the user's id.
func (q *redisQueue) CancelAll(ctx context.Context, userID string, filter func(reminder.Payload) bool) error {
	match := escapeGlob(userID) + ":*"

	var (
		ids    []string
		cursor uint64
	)
	for {
		kv, next, err := q.rdb.HScan(ctx, payloadKey, cursor, match, scanCount).Result()
		if err != nil {
			return err
		}
		for i := 0; i+1 < len(kv); i += 2 {
			id, raw := kv[i], kv[i+1]
			var p reminder.Payload
			if err := json.Unmarshal([]byte(raw), &p); err != nil {
				ids = append(ids, id)
				continue
			}
			if p.UserID != userID {
				continue
			}
			if filter == nil || filter(p) {
				ids = append(ids, id)
			}
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	return q.remove(ctx, ids...)
}

var globEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`, "[", `\[`, "]", `\]`)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}

func (q *redisQueue) remove(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = id
	}
	_, err := q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, dueKey, members...)
		pipe.HDel(ctx, payloadKey, ids...)
		return nil
	})
	return err
}

func (q *redisQueue) ListDue(ctx context.Context, now time.Time, limit int) ([]Due, error) {
	entries, err := q.rdb.ZRangeByScoreWithScores(ctx, dueKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = fmt.Sprint(e.Member)
	}
	values, err := q.rdb.HMGet(ctx, payloadKey, ids...).Result()
	if err != nil {
		return nil, err
	}

	due := make([]Due, 0, len(entries))
	var orphans []string
	for i, e := range entries {
		raw, ok := values[i].(string)
		if !ok {
			orphans = append(orphans, ids[i])
			continue
		}
		var p reminder.Payload
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			orphans = append(orphans, ids[i])
			continue
		}
		due = append(due, Due{ID: ids[i], Payload: p, At: time.Unix(int64(e.Score), 0)})
	}

	if err := q.remove(ctx, orphans...); err != nil {
		return nil, err
	}
	return due, nil
}

func (q *redisQueue) Ack(ctx context.Context, due ...Due) error {
	if len(due) == 0 {
		return nil
	}
	args := make([]any, 0, len(due)*2)
	for _, d := range due {
		args = append(args, d.ID, d.At.Unix())
	}
	return ackScript.Run(ctx, q.rdb, []string{dueKey, payloadKey}, args...).Err()
}
