package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/vyre/desktop/internal/commands"
	"github.com/vyre/desktop/internal/config"
	"github.com/vyre/desktop/internal/observer"
	"github.com/vyre/desktop/internal/shell"
	"github.com/vyre/desktop/internal/windowstate"
)

// MountFunc receives the main window once it has been found during setup.
type MountFunc func(s *shell.Shell, window shell.Window)

// Build wires commands, the window-state extension and the setup hook onto a
// new shell over host. started is the bootstrap instant used to report setup
// duration.
func Build(host shell.Host, cfg *config.Config, logger *zap.Logger, started time.Time, mount MountFunc) *shell.Shell {
	s := shell.New(host, logger)
	commands.Register(s, logger)

	if cfg.WindowState.Enabled {
		store := windowstate.NewStore(cfg.StatePath())
		s.Use(windowstate.NewExtension(store, logger, cfg.GUI.MainWindow))
	}

	label := cfg.GUI.MainWindow
	s.OnSetup(func(s *shell.Shell) error {
		if window, ok := s.Window(label); ok {
			observer.Attach(window, logger)
			if mount != nil {
				mount(s, window)
			}
		} else {
			logger.Warn("Main window not found, skipping event handlers",
				zap.String("window", label))
		}

		logger.Info("Setup completed",
			zap.Duration("elapsed", time.Since(started)),
			zap.Strings("commands", s.Commands()))
		return nil
	})

	return s
}
