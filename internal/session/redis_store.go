package session

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "session:"

// RedisStore menaruh session di Redis supaya umur session lepas dari proses
// dan bisa dipakai lebih dari satu instance API. TTL ditetapkan sekali saat
// Store dan tidak di-refresh, sama dengan semantik created_at di MemoryStore.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		rdb:    rdb,
		ttl:    ttl,
		logger: zap.L().Named("session.redis"),
	}
}

func (s *RedisStore) Store(ctx context.Context, token string, userID int64) {
	err := s.rdb.Set(ctx, redisKeyPrefix+token, userID, s.ttl).Err()
	if err != nil {
		s.logger.Error("store session failed", zap.Error(err))
	}
}

func (s *RedisStore) GetUserID(ctx context.Context, token string) (int64, bool) {
	val, err := s.rdb.Get(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Error("get session failed", zap.Error(err))
		}
		return 0, false
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		s.logger.Error("corrupt session value", zap.String("value", val))
		return 0, false
	}
	return userID, true
}

func (s *RedisStore) Remove(ctx context.Context, token string) {
	if err := s.rdb.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		s.logger.Error("remove session failed", zap.Error(err))
	}
}

func (s *RedisStore) Count(ctx context.Context) int {
	var (
		cursor uint64
		total  int
	)
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, redisKeyPrefix+"*", 100).Result()
		if err != nil {
			s.logger.Error("count sessions failed", zap.Error(err))
			return total
		}
		total += len(keys)
		cursor = next
		if cursor == 0 {
			return total
		}
	}
}
