package kvstore_test

import (
	"context"
	"errors"
	"testing"

	"go-attendo/internal/kvstore"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	s := kvstore.NewRedisStore(rdb)

	t.Run("get existing", func(t *testing.T) {
		mock.ExpectGet("user:u1:shifts").SetVal(`[]`)
		b, err := s.Get(ctx, "user:u1:shifts")
		assert.NoError(t, err)
		assert.Equal(t, "[]", string(b))
	})

	t.Run("get missing maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectGet("user:u1:workStatus").RedisNil()
		_, err := s.Get(ctx, "user:u1:workStatus")
		assert.True(t, errors.Is(err, kvstore.ErrNotFound))
	})

	t.Run("set and delete", func(t *testing.T) {
		mock.ExpectSet("k", []byte("v"), 0).SetVal("OK")
		mock.ExpectDel("k").SetVal(1)
		assert.NoError(t, s.Set(ctx, "k", []byte("v")))
		assert.NoError(t, s.Delete(ctx, "k"))
	})

	t.Run("batch runs in a transaction", func(t *testing.T) {
		mock.ExpectTxPipeline()
		mock.ExpectSet("a", []byte("1"), 0).SetVal("OK")
		mock.ExpectDel("b").SetVal(1)
		mock.ExpectTxPipelineExec()

		err := s.Batch(ctx,
			kvstore.Op{Key: "a", Value: []byte("1")},
			kvstore.Remove("b"),
		)
		assert.NoError(t, err)
	})

	t.Run("batch error surfaces", func(t *testing.T) {
		mock.ExpectTxPipeline()
		mock.ExpectSet("a", []byte("1"), 0).SetErr(errors.New("READONLY"))
		mock.ExpectTxPipelineExec()

		err := s.Batch(ctx, kvstore.Op{Key: "a", Value: []byte("1")})
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
