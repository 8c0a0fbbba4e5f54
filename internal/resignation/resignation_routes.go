package resignation

import (
	"github.com/IonixCH/hris-api/internal/middleware"
	"github.com/IonixCH/hris-api/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions session.Store) {
	grp := r.Group("/resignation")
	grp.Use(middleware.SessionAuth(sessions))
	{
		grp.POST("/submit", h.Submit)
	}
}
