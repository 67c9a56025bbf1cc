package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hostelops/internal/cache"
	"hostelops/internal/errors"
)

// RateLimit enforces a fixed-window request limit per client IP, counted in
// Redis so the limit holds across replicas. The bucket name separates the
// general API window from the stricter auth window. When Redis is down the
// counter reads zero and requests pass (fail open).
func RateLimit(store *cache.Client, bucket string, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("ratelimit:%s:%s", bucket, c.RealIP())
			count, err := store.Incr(c.Request().Context(), key, window)
			if err != nil || count == 0 {
				return next(c)
			}
			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{
					Error: "too many requests, try again later",
					Code:  "RATE_LIMITED",
				})
			}
			return next(c)
		}
	}
}
