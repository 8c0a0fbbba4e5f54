package company

import (
	"github.com/IonixCH/hris-api/internal/middleware"
	"github.com/IonixCH/hris-api/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions session.Store) {
	loc := r.Group("/attendance/office-location")
	loc.Use(middleware.SessionAuth(sessions))
	{
		loc.GET("", h.GetOfficeLocation)
		loc.POST("", h.UpdateOfficeLocation)
	}
}
