package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore_StoreAndGet(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, 24*time.Hour)

	mock.ExpectSet("session:token-a", int64(7), 24*time.Hour).SetVal("OK")
	store.Store(ctx, "token-a", 7)

	mock.ExpectGet("session:token-a").SetVal("7")
	userID, ok := store.GetUserID(ctx, "token-a")
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_GetFailsClosed(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, 24*time.Hour)

	mock.ExpectGet("session:token-a").SetErr(errors.New("connection refused"))

	_, ok := store.GetUserID(ctx, "token-a")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, 24*time.Hour)

	mock.ExpectDel("session:token-a").SetVal(1)
	store.Remove(ctx, "token-a")

	mock.ExpectDel("session:token-a").SetVal(0)
	store.Remove(ctx, "token-a")

	assert.NoError(t, mock.ExpectationsWereMet())
}
