package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"matrace_backend/internal/database"

	"github.com/gin-gonic/gin"
)

const (
	CheckoutMaxAttempts = 10
	CheckoutWindow      = 1 * time.Minute
)

// CheckoutRateLimit caps checkout submissions per client IP. The in-flight
// guard handles double-clicks; this handles scripted abuse.
func CheckoutRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		ip := c.ClientIP()
		key := "checkout_attempts:" + ip

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= CheckoutMaxAttempts {
			ttl := database.Redis.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Příliš mnoho pokusů o objednávku. Zkuste to prosím později.",
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		pipe := database.Redis.TxPipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, CheckoutWindow)
		if _, err := pipe.Exec(ctx); err == nil {
			remaining := CheckoutMaxAttempts - attempts - 1
			c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		}

		c.Next()
	}
}
