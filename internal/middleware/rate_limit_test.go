package middleware

import (
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit_FailsOpenWithoutRedis(t *testing.T) {
	// a nil store counts every request as zero, so nothing is throttled
	mw := RateLimit(nil, "api", 1, time.Minute)

	for i := 0; i < 5; i++ {
		c := newTestContext()
		err := mw(func(c echo.Context) error {
			return c.NoContent(204)
		})(c)
		assert.NoError(t, err)
	}
}
