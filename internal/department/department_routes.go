package department

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	// Dropdown departemen dipakai form registrasi, jadi tanpa auth
	r.GET("/departments", h.List)
}
