package windowstate

import (
	"go.uber.org/zap"

	"github.com/vyre/desktop/internal/shell"
)

// Extension restores saved geometry at setup and saves it when a tracked
// window is asked to close. Failures are logged, never returned.
type Extension struct {
	store  *Store
	logger *zap.Logger
	labels []string
}

// NewExtension tracks the windows with the given labels.
func NewExtension(store *Store, logger *zap.Logger, labels ...string) *Extension {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extension{store: store, logger: logger, labels: labels}
}

func (e *Extension) Name() string {
	return "window-state"
}

func (e *Extension) Setup(s *shell.Shell) error {
	if err := e.store.Load(); err != nil {
		e.logger.Warn("Failed to load window state, using defaults",
			zap.String("path", e.store.Path()),
			zap.Error(err))
	} else if saved := e.store.SavedAt(); !saved.IsZero() {
		e.logger.Debug("Window state loaded",
			zap.String("path", e.store.Path()),
			zap.Time("saved_at", saved))
	}

	for _, label := range e.labels {
		window, ok := s.Window(label)
		if !ok {
			continue
		}

		if g, ok := e.store.Get(label); ok {
			window.SetGeometry(g)
			e.logger.Debug("Window geometry restored",
				zap.String("window", label),
				zap.Float32("width", g.Width),
				zap.Float32("height", g.Height))
		}

		window.OnEvent(func(ev shell.Event) {
			if ev.Kind == shell.CloseRequested {
				e.capture(window)
			}
		})
	}
	return nil
}

func (e *Extension) capture(window shell.Window) {
	if !e.store.Put(window.Label(), window.Geometry()) {
		return
	}
	if err := e.store.Save(); err != nil {
		e.logger.Warn("Failed to save window state",
			zap.String("window", window.Label()),
			zap.Error(err))
	}
}
