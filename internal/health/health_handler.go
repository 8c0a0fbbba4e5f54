package health

import (
	"net/http"
	"time"

	"github.com/IonixCH/hris-api/internal/session"
	"github.com/IonixCH/hris-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db       *gorm.DB
	sessions session.Store
	started  time.Time
}

func NewHandler(db *gorm.DB, sessions session.Store) *Handler {
	return &Handler{db: db, sessions: sessions, started: time.Now()}
}

func (h *Handler) Check(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"

	if sqlDB, err := h.db.DB(); err != nil {
		status, dbStatus = "degraded", "unreachable"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		status, dbStatus = "degraded", "unreachable"
	}

	data := gin.H{
		"status":          status,
		"database":        dbStatus,
		"active_sessions": h.sessions.Count(c.Request.Context()),
		"uptime_seconds":  int(time.Since(h.started).Seconds()),
	}

	if status != "ok" {
		c.JSON(http.StatusServiceUnavailable, response.Envelope{
			Success:   false,
			Message:   "Service degraded",
			Data:      data,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	response.Success(c, http.StatusOK, "Service healthy", data)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/health", h.Check)
}
