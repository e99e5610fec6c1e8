package middleware

import (
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-gonic/gin"
)

// RateLimiter wraps the tollbooth limiter as a gin middleware.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return tollbooth_gin.LimitHandler(lmt)
}
