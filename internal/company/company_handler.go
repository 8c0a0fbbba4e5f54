package company

import (
	"net/http"

	"github.com/IonixCH/hris-api/internal/shared/apperror"
	"github.com/IonixCH/hris-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) GetOfficeLocation(c *gin.Context) {
	loc, err := h.service.GetOfficeLocation(c.Request.Context(), 0)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Office location retrieved successfully", OfficeLocationResponse{
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		CompanyID:   loc.CompanyID,
		CompanyName: loc.CompanyName,
	})
}

func (h *Handler) UpdateOfficeLocation(c *gin.Context) {
	var req UpdateOfficeLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Latitude and longitude are required")
		return
	}

	loc, err := h.service.UpdateOfficeLocation(c.Request.Context(), 0, *req.Latitude, *req.Longitude)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Office location updated successfully", OfficeLocationResponse{
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		CompanyID:   loc.CompanyID,
		CompanyName: loc.CompanyName,
	})
}
