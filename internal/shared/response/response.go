package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope adalah format respons standar untuk semua endpoint API.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success:   false,
		Message:   message,
		Data:      nil,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ListMeta dipakai endpoint list dengan pagination limit/offset.
type ListMeta struct {
	TotalCount int64 `json:"total_count"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	HasMore    bool  `json:"has_more"`
}

func NewListMeta(total int64, limit, offset int) ListMeta {
	return ListMeta{
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
		HasMore:    int64(offset+limit) < total,
	}
}
