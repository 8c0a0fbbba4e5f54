package middleware

import (
	"strconv"

	"github.com/IonixCH/hris-api/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger menempelkan logger ber-scope request (request_id + user_id)
// ke context supaya service dan repo bisa log tanpa tahu gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		uid := UserID(c)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", strconv.FormatInt(uid, 10)),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
