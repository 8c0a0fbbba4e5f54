package attendance

import (
	"net/http"
	"strconv"

	"github.com/IonixCH/hris-api/internal/middleware"
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

func toggleMessage(resp *ToggleResponse) string {
	if resp.Action == "check_in" {
		return "Check-in successful"
	}
	return "Check-out successful"
}

func (h *Handler) Toggle(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Toggle(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toggleMessage(resp), resp)
}

func (h *Handler) CheckIn(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CheckIn(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Check-in successful", resp)
}

func (h *Handler) CheckOut(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CheckOut(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Check-out successful", resp)
}

func (h *Handler) Status(c *gin.Context) {
	employeeID, err := strconv.ParseInt(c.Param("employee_id"), 10, 64)
	if err != nil || employeeID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid employee id")
		return
	}

	resp, svcErr := h.service.Status(c.Request.Context(), employeeID)
	if svcErr != nil {
		writeServiceError(c, svcErr)
		return
	}
	response.Success(c, http.StatusOK, "Attendance status retrieved successfully", resp)
}

func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard retrieved successfully", resp)
}

func (h *Handler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, total, err := h.service.History(c.Request.Context(), middleware.UserID(c), limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Attendance history retrieved successfully", gin.H{
		"records": records,
		"meta":    response.NewListMeta(total, limit, offset),
	})
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	employeeID, _ := strconv.ParseInt(c.Query("employee_id"), 10, 64)

	records, total, err := h.service.List(c.Request.Context(), ListFilter{
		EmployeeID: employeeID,
		From:       c.Query("date_from"),
		To:         c.Query("date_to"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Attendance records retrieved successfully", gin.H{
		"records": records,
		"meta":    response.NewListMeta(total, limit, offset),
	})
}
