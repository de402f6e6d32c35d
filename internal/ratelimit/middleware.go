package ratelimit

import (
	"math"
	"strconv"

	"adventure-server/internal/apierrors"
	"adventure-server/internal/observability"

	"github.com/gin-gonic/gin"
)

const limitExceededMessage = "Too many requests from this IP, please try again later."

// Middleware creates a Gin middleware that rate limits by client IP
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := observability.GetRealClientIP(c)
		ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "client_ip", Value: ip})

		result := s.Check(ctx, ip)

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_s", Value: retryAfter},
			), "rate limit exceeded")

			apierrors.RespondWithError(c, apierrors.TooManyRequests(limitExceededMessage))
			return
		}

		c.Next()
	}
}
