package attendance

import (
	"github.com/IonixCH/hris-api/internal/middleware"
	"github.com/IonixCH/hris-api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions session.Store, rdb *redis.Client) {
	grp := r.Group("/attendance")
	grp.Use(middleware.SessionAuth(sessions))
	{
		// Toggle dilindungi idempotency key karena mobile client suka retry,
		// plus rate limit per user untuk meredam double-tap
		grp.POST("/toggle", middleware.RateLimitByUser(rate.Limit(2), 5), middleware.Idempotency(rdb), h.Toggle)
		grp.POST("/checkin", h.CheckIn)
		grp.POST("/checkout", h.CheckOut)
		grp.GET("/dashboard", h.Dashboard)
		grp.GET("/history", h.History)
		grp.GET("/status/:employee_id", h.Status)
		grp.GET("", h.List)
	}
}
