// Package commands holds the procedures the content layer can invoke.
package commands

import (
	"go.uber.org/zap"

	"github.com/vyre/desktop/internal/shell"
)

const (
	CloseWindow  = "close_window"
	BackendReady = "backend_ready"
)

// Register installs every command on s.
func Register(s *shell.Shell, logger *zap.Logger) {
	s.Handle(CloseWindow, CloseWindowHandler(logger))
	s.Handle(BackendReady, BackendReadyHandler(logger))
}

// CloseWindowHandler closes the invoking window. A failed close is logged and
// otherwise swallowed; the caller is never told.
func CloseWindowHandler(logger *zap.Logger) shell.Handler {
	return func(inv shell.Invocation) (any, error) {
		if inv.Window == nil {
			logger.Warn("Close requested without a window", zap.String("invocation_id", inv.ID))
			return nil, nil
		}

		label := inv.Window.Label()
		logger.Info("Window close requested", zap.String("window", label))

		if err := inv.Window.Close(); err != nil {
			logger.Warn("Failed to close window",
				zap.String("window", label),
				zap.Error(err))
		}
		return nil, nil
	}
}

// BackendReadyHandler always reports true.
func BackendReadyHandler(logger *zap.Logger) shell.Handler {
	return func(shell.Invocation) (any, error) {
		logger.Info("Backend is ready")
		return true, nil
	}
}
