package elearning

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/IonixCH/hris-api/internal/shared/apperror"
	"github.com/IonixCH/hris-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SlideResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DocumentURL string `json:"document_url,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	Sequence    int    `json:"sequence"`
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	slides, total, err := h.repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	out := make([]SlideResponse, 0, len(slides))
	for i := range slides {
		out = append(out, toResponse(&slides[i]))
	}
	response.Success(c, http.StatusOK, "Learning materials retrieved successfully", gin.H{
		"slides": out,
		"meta":   response.NewListMeta(total, limit, offset),
	})
}

func (h *Handler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid slide id")
		return
	}

	slide, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Learning material not found")
			return
		}
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}
	response.Success(c, http.StatusOK, "Learning material retrieved successfully", toResponse(slide))
}

func toResponse(s *Slide) SlideResponse {
	return SlideResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		DocumentURL: s.DocumentURL,
		VideoURL:    s.VideoURL,
		Sequence:    s.Sequence,
	}
}
