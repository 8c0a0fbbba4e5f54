package middleware

import (
	"net/http"
	"strings"

	"github.com/IonixCH/hris-api/internal/session"
	"github.com/IonixCH/hris-api/internal/shared/contextutil"
	"github.com/IonixCH/hris-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// SessionAuth memvalidasi bearer token lewat session store. Token kosong,
// tidak dikenal, atau kedaluwarsa semuanya berakhir 401; tidak ada jalur lain.
func SessionAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			token = ""
		}

		if token == "" {
			// Fallback cookie untuk web client yang tidak set header
			if cookie, err := c.Cookie("session_id"); err == nil {
				token = cookie
			}
		}

		if token == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		userID, ok := store.GetUserID(c.Request.Context(), token)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set("session_token", token)

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// UserID mengambil user id hasil SessionAuth dari gin context.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
