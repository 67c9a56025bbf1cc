package logger

import (
	"os"

	"go.uber.org/zap"
)

// New creates a zap logger. Development mode (human-readable console output)
// is selected with APP_ENV=development; everything else gets JSON output.
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
