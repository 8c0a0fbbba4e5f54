package app

import (
	"os"
	"strconv"
	"time"

	"github.com/IonixCH/hris-api/internal/middleware"
	"github.com/IonixCH/hris-api/internal/session"
	"github.com/IonixCH/hris-api/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp menyiapkan koneksi infra, memilih session backend, lalu
// mendaftarkan seluruh modul ke router.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	// Redis opsional: tanpa REDIS_ADDR, idempotency mati dan session
	// backend jatuh ke memory.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		logger.Info("redis connection established")
	}

	sessions := buildSessionStore(rdb, logger)

	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, gormDB, rdb, sessions)
}

func buildSessionStore(rdb *redis.Client, logger *zap.Logger) session.Store {
	ttl := session.DefaultTTL
	if hours, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS")); err == nil && hours > 0 {
		ttl = time.Duration(hours) * time.Hour
	}

	if os.Getenv("SESSION_BACKEND") == "redis" && rdb != nil {
		logger.Info("using redis session store", zap.Duration("ttl", ttl))
		return session.NewRedisStore(rdb, ttl)
	}

	logger.Info("using in-memory session store", zap.Duration("ttl", ttl))
	return session.NewMemoryStore(ttl)
}

// attendanceRadiusMeters membaca override radius geofence dari env.
func attendanceRadiusMeters() float64 {
	if v := os.Getenv("ATTENDANCE_RADIUS_M"); v != "" {
		if m, err := strconv.ParseFloat(v, 64); err == nil && m > 0 {
			return m
		}
	}
	return 0
}
