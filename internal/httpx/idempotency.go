package httpx

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/coffee-orders/internal/idempotency"
)

const HeaderIdempotencyKey = "Idempotency-Key"

// Idempotent rejects a repeated Idempotency-Key from the same caller with 409.
// Requests without the header pass through. A key whose request did not
// succeed is released so it can be retried. Redis errors fail open.
func Idempotent(store idempotency.Checker, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqKey := c.GetHeader(HeaderIdempotencyKey)
		if reqKey == "" || store == nil {
			c.Next()
			return
		}
		key := idempotency.Key(Identity(c).ID, reqKey)
		ctx := c.Request.Context()

		seen, err := store.Seen(ctx, key)
		if err != nil {
			log.WarnContext(ctx, "idempotency check failed", "err", err)
			c.Next()
			return
		}
		if seen {
			c.AbortWithStatusJSON(http.StatusConflict, HTTPError{Error: "duplicate request for this Idempotency-Key"})
			return
		}

		c.Next()
		if c.Writer.Status() >= 300 {
			if err := store.Release(ctx, key); err != nil {
				log.WarnContext(ctx, "idempotency release failed", "err", err)
			}
		}
	}
}
