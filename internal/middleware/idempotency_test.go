package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IonixCH/hris-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(rdb *redis.Client, handled *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/leaves",
		func(c *gin.Context) { c.Set(middleware.ContextUserIDKey, int64(42)) },
		middleware.Idempotency(rdb),
		func(c *gin.Context) {
			*handled++
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Leave request submitted"})
		},
	)
	return r
}

func TestIdempotencyPassesThroughWithoutRedis(t *testing.T) {
	handled := 0
	r := newIdempotencyRouter(nil, &handled)

	req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
	req.Header.Set("Idempotency-Key", "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, handled)
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	handled := 0
	r := newIdempotencyRouter(rdb, &handled)

	mock.ExpectGet("idemp:/leaves:42:abc").SetVal(`{"success":true,"message":"Leave request submitted"}`)

	req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
	req.Header.Set("Idempotency-Key", "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Leave request submitted")
	assert.Zero(t, handled, "request kedua tidak boleh sampai ke handler")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRejectsInFlightDuplicate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	handled := 0
	r := newIdempotencyRouter(rdb, &handled)

	mock.ExpectGet("idemp:/leaves:42:abc").RedisNil()
	mock.ExpectSetNX("idemp:/leaves:42:abc:lock", "locked", 30*time.Second).SetVal(false)

	req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
	req.Header.Set("Idempotency-Key", "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "still being processed")
	assert.Zero(t, handled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyFirstRequestAcquiresLock(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	handled := 0
	r := newIdempotencyRouter(rdb, &handled)

	mock.ExpectGet("idemp:/leaves:42:abc").RedisNil()
	mock.ExpectSetNX("idemp:/leaves:42:abc:lock", "locked", 30*time.Second).SetVal(true)

	req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
	req.Header.Set("Idempotency-Key", "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, handled)
	assert.NoError(t, mock.ExpectationsWereMet())
}
