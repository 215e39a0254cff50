// Package observer logs the main window's lifecycle.
package observer

import (
	"go.uber.org/zap"

	"github.com/vyre/desktop/internal/shell"
)

// New returns a handler that logs close requests, destruction and focus
// changes. It never acts on the window.
func New(logger *zap.Logger) shell.EventHandler {
	return func(ev shell.Event) {
		switch ev.Kind {
		case shell.CloseRequested:
			logger.Info("Window close requested")
		case shell.Destroyed:
			logger.Info("Window destroyed")
		case shell.Focused:
			logger.Info("Window focus changed", zap.Bool("focused", ev.Focused))
		default:
		}
	}
}

// Attach registers the logging handler on window.
func Attach(window shell.Window, logger *zap.Logger) {
	window.OnEvent(New(logger.With(zap.String("window", window.Label()))))
}
