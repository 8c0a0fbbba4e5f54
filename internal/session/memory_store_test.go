package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_StoreAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultTTL)

	store.Store(ctx, "token-a", 7)

	userID, ok := store.GetUserID(ctx, "token-a")
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, 1, store.Count(ctx))
}

func TestMemoryStore_OverwriteReplacesBinding(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultTTL)

	store.Store(ctx, "token-a", 7)
	store.Store(ctx, "token-a", 9)

	userID, ok := store.GetUserID(ctx, "token-a")
	assert.True(t, ok)
	assert.Equal(t, int64(9), userID)
	assert.Equal(t, 1, store.Count(ctx))
}

func TestMemoryStore_ExpiredSessionIsPurgedOnLookup(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore(DefaultTTL, WithClock(func() time.Time { return now }))

	store.Store(ctx, "token-a", 7)
	assert.Equal(t, 1, store.Count(ctx))

	now = now.Add(24*time.Hour + time.Second)

	_, ok := store.GetUserID(ctx, "token-a")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Count(ctx))
}

func TestMemoryStore_StoreSweepsOtherExpiredSessions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Hour, WithClock(func() time.Time { return now }))

	store.Store(ctx, "old-1", 1)
	store.Store(ctx, "old-2", 2)

	now = now.Add(2 * time.Hour)
	store.Store(ctx, "fresh", 3)

	assert.Equal(t, 1, store.Count(ctx))
	userID, ok := store.GetUserID(ctx, "fresh")
	assert.True(t, ok)
	assert.Equal(t, int64(3), userID)
}

func TestMemoryStore_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultTTL)

	store.Store(ctx, "token-a", 7)
	store.Remove(ctx, "token-a")
	store.Remove(ctx, "token-a")

	_, ok := store.GetUserID(ctx, "token-a")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Count(ctx))
}

func TestMemoryStore_UnknownTokenNotAuthenticated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultTTL)

	userID, ok := store.GetUserID(ctx, "never-issued")
	assert.False(t, ok)
	assert.Zero(t, userID)
}
