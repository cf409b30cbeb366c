package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/question-desk/internal/config"
)

// New builds the process logger: JSON production output for the production
// environment, human-readable development output everywhere else.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
