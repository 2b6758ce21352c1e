package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"hospital-booking/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RateLimit allows at most limit requests per window for each client IP
// and route, counted in Redis so every instance shares the budget. Redis
// failures let the request through. Windows are whole seconds, at least
// one.
func RateLimit(client *redis.Client, name string, limit int, window time.Duration) gin.HandlerFunc {
	if window < time.Second {
		window = time.Second
	}
	window = window.Truncate(time.Second)
	return func(c *gin.Context) {
		bucket := time.Now().Unix() / int64(window/time.Second)
		key := fmt.Sprintf("booking:ratelimit:%s:%s:%d", name, c.ClientIP(), bucket)

		ctx := c.Request.Context()
		pipe := client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			log.WithField("limiter", name).WithError(err).Warn("Rate limiter unavailable")
			c.Next()
			return
		}

		if n := incr.Val(); n > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(window/time.Second)))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
