package auth

import (
	"github.com/IonixCH/hris-api/internal/middleware"
	"github.com/IonixCH/hris-api/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions session.Store) {
	grp := r.Group("/auth")
	{
		// Endpoint kredensial dibatasi per IP untuk meredam brute force
		grp.POST("/login", middleware.RateLimitByIP(rate.Limit(5), 10), h.Login)
		grp.POST("/register", middleware.RateLimitByIP(rate.Limit(2), 5), h.Register)
		grp.POST("/logout", h.Logout)

		authed := grp.Group("")
		authed.Use(middleware.SessionAuth(sessions))
		{
			authed.GET("/profile", h.Profile)
			authed.POST("/change-password", h.ChangePassword)
		}
	}
}
