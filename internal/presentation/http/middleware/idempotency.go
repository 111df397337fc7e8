package middleware

import (
	"bytes"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/repository"
)

const (
	// IdempotencyKeyHeader is the HTTP header carrying the client key
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long cached responses are replayed
	IdempotencyKeyTTL = 24 * time.Hour
)

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyRequired rejects POST requests without an Idempotency-Key
// header. A retried key replays the first successful response instead
// of running the operation again.
func IdempotencyRequired(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.JSON(400, gin.H{
				"success": false,
				"message": "Idempotency-Key header is required for this request",
			})
			c.Abort()
			return
		}

		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(401, gin.H{
				"success": false,
				"message": "User not authenticated",
			})
			c.Abort()
			return
		}

		existing, err := repo.Get(c.Request.Context(), idempotencyKey, userID)
		if err != nil {
			c.JSON(500, gin.H{
				"success": false,
				"message": "Failed to check idempotency key",
			})
			c.Abort()
			return
		}

		if existing != nil {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.StatusCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// Only cache successful responses; a failed attempt may be retried
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			entry := &entity.IdempotencyKey{
				Key:          idempotencyKey,
				UserID:       userID,
				Method:       c.Request.Method,
				Path:         c.FullPath(),
				StatusCode:   c.Writer.Status(),
				ResponseBody: blw.body.String(),
				ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
			}

			_ = repo.Save(c.Request.Context(), entry)
		}
	}
}
