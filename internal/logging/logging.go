// Package logging owns the process-wide zap logger.
package logging

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrUnknownLevel is returned for a level name other than debug, info, warn
// or error.
var ErrUnknownLevel = errors.New("unknown log level")

var (
	once    sync.Once
	logger  *zap.Logger
	initErr error
)

// Init builds the process logger for level on first call and installs it as
// zap's global logger. Later calls return the same logger and ignore level.
func Init(level string) (*zap.Logger, error) {
	once.Do(func() {
		logger, initErr = New(level)
		if initErr == nil {
			zap.ReplaceGlobals(logger)
		}
	})
	return logger, initErr
}

// CheckLevel reports whether New accepts level. The empty string means info.
func CheckLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownLevel, level)
	}
}

// New builds a logger for level without touching process state.
func New(level string) (*zap.Logger, error) {
	if err := CheckLevel(level); err != nil {
		return nil, err
	}

	var config zap.Config

	switch level {
	case "debug":
		config = zap.NewDevelopmentConfig()
	case "warn":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config = zap.NewProductionConfig()
	}

	config.Encoding = "console"
	config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}
