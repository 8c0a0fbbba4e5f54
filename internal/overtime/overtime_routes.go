package overtime

import (
	"github.com/IonixCH/hris-api/internal/middleware"
	"github.com/IonixCH/hris-api/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions session.Store) {
	// Daftar tipe lembur dipakai form publik sebelum login selesai
	r.GET("/overtime-types", h.ListTypes)

	grp := r.Group("/overtime")
	grp.Use(middleware.SessionAuth(sessions))
	{
		grp.POST("/submit", h.Submit)
		grp.GET("", h.List)
	}
}
