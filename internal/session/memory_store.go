package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type entry struct {
	userID     int64
	createdAt  time.Time
	lastUsedAt time.Time
}

// MemoryStore menyimpan session di memori proses, dijaga satu mutex.
// Expiry dicek lazy saat lookup; sweep menyeluruh menumpang di setiap Store
// sehingga tidak butuh goroutine pembersih.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

type MemoryOption func(*MemoryStore)

// WithClock mengganti sumber waktu, dipakai test untuk simulasi expiry.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func NewMemoryStore(ttl time.Duration, opts ...MemoryOption) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &MemoryStore{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
		logger:   zap.L().Named("session.memory"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store menimpa binding lama untuk token yang sama tanpa komplain.
func (s *MemoryStore) Store(_ context.Context, token string, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sessions[token] = &entry{
		userID:     userID,
		createdAt:  now,
		lastUsedAt: now,
	}
	s.logger.Debug("session stored", zap.Int64("user_id", userID))
	s.cleanupExpiredLocked(now)
}

func (s *MemoryStore) GetUserID(_ context.Context, token string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok {
		return 0, false
	}

	now := s.now()
	if now.Sub(e.createdAt) >= s.ttl {
		delete(s.sessions, token)
		s.logger.Debug("session expired and removed", zap.Int64("user_id", e.userID))
		return 0, false
	}

	e.lastUsedAt = now
	return e.userID, true
}

// Remove bersifat idempoten: token yang tidak ada bukan error.
func (s *MemoryStore) Remove(_ context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; ok {
		delete(s.sessions, token)
		s.logger.Debug("session removed")
	}
}

func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MemoryStore) cleanupExpiredLocked(now time.Time) {
	expired := 0
	for token, e := range s.sessions {
		if now.Sub(e.createdAt) >= s.ttl {
			delete(s.sessions, token)
			expired++
		}
	}
	if expired > 0 {
		s.logger.Info("cleaned up expired sessions", zap.Int("count", expired))
	}
}
