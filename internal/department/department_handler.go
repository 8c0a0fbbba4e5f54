package department

import (
	"net/http"

	"github.com/IonixCH/hris-api/internal/shared/apperror"
	"github.com/IonixCH/hris-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(c *gin.Context) {
	departments, err := h.repo.List(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	out := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	response.Success(c, http.StatusOK, "Departments retrieved successfully", out)
}
