package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wahe7/book-slots/internal/backend"
)

const RequestIDKey = "request_id"

// RequestID tags every inbound request with an id and threads it through the
// request context so outbound backend calls carry the same id.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Request = c.Request.WithContext(backend.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
