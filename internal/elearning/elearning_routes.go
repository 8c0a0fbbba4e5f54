package elearning

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	grp := r.Group("/elearning/slides")
	{
		grp.GET("", h.List)
		grp.GET("/:id", h.Detail)
	}
}
