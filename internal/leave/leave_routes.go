package leave

import (
	"github.com/IonixCH/hris-api/internal/middleware"
	"github.com/IonixCH/hris-api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions session.Store, rdb *redis.Client) {
	grp := r.Group("/leaves")
	grp.Use(middleware.SessionAuth(sessions))
	{
		grp.GET("", h.List)
		grp.POST("", middleware.Idempotency(rdb), h.Create)
	}
}
