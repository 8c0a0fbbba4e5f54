package auth

import (
	"net/http"
	"strings"

	"github.com/IonixCH/hris-api/internal/middleware"
	"github.com/IonixCH/hris-api/internal/shared/apperror"
	"github.com/IonixCH/hris-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const sessionCookieMaxAge = 24 * 60 * 60

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

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	// Cookie untuk web client; mobile pakai session_token dari body.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("session_id", resp.SessionToken, sessionCookieMaxAge, "/", "", false, true)

	response.Success(c, http.StatusOK, "Login successful", resp)
}

func (h *Handler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		if cookie, err := c.Cookie("session_id"); err == nil {
			token = cookie
		}
	}

	h.service.Logout(c.Request.Context(), token)

	c.SetCookie("session_id", "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, "Logout successful", nil)
}

func (h *Handler) Profile(c *gin.Context) {
	resp, err := h.service.Profile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved successfully", resp)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Registration successful", resp)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), middleware.UserID(c), req); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}
