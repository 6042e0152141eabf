// Package logger builds the process-wide zap logger.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// New constructs a sugared zap logger. Setting GAME_ENV=dev switches to
// the human-readable development encoder; the default is the production
// JSON encoder at info level.
func New() *zap.SugaredLogger {
	var (
		log *zap.Logger
		err error
	)

	if strings.ToLower(os.Getenv("GAME_ENV")) == "dev" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return log.Sugar()
}
