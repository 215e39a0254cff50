// Package app boots the desktop shell on Fyne.
package app

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/zap"

	"github.com/vyre/desktop/internal/config"
	"github.com/vyre/desktop/internal/gui"
	"github.com/vyre/desktop/internal/shell"
	"github.com/vyre/desktop/internal/shell/fynehost"
)

// Application represents the desktop application
type Application struct {
	logger  *zap.Logger
	cfg     *config.Config
	started time.Time

	// Fyne app and host
	fyneApp fyne.App
	host    *fynehost.Host

	shell *shell.Shell
	view  *gui.MainView
}

// NewApplication creates the Fyne application and its main window.
func NewApplication(logger *zap.Logger, cfg *config.Config, started time.Time) *Application {
	return newApplication(logger, cfg, started, fyneapp.NewWithID(cfg.GUI.AppID))
}

func newApplication(logger *zap.Logger, cfg *config.Config, started time.Time, fyneApp fyne.App) *Application {
	if cfg.GUI.Theme == "light" {
		fyneApp.Settings().SetTheme(theme.LightTheme())
	} else {
		fyneApp.Settings().SetTheme(theme.DarkTheme())
	}

	host := fynehost.New(fyneApp, logger)
	window := host.NewWindow(cfg.GUI.MainWindow, cfg.GUI.Title)
	window.Fyne().Resize(fyne.NewSize(float32(cfg.GUI.Width), float32(cfg.GUI.Height)))
	window.Fyne().CenterOnScreen()

	return &Application{
		logger:  logger,
		cfg:     cfg,
		started: started,
		fyneApp: fyneApp,
		host:    host,
	}
}

// Initialize registers commands and extensions and prepares setup.
func (a *Application) Initialize() error {
	if a.shell != nil {
		return fmt.Errorf("application already initialized")
	}
	a.shell = Build(a.host, a.cfg, a.logger, a.started, a.mountMainView)
	a.logger.Info("Application initialized",
		zap.Strings("windows", a.host.Labels()),
		zap.Strings("commands", a.shell.Commands()))
	return nil
}

// Run blocks until the main window closes.
func (a *Application) Run() error {
	if a.shell == nil {
		return fmt.Errorf("application not initialized")
	}
	return a.shell.Run()
}

// mountMainView puts the content layer into the main window. Readiness is
// checked once the Fyne loop has started.
func (a *Application) mountMainView(s *shell.Shell, window shell.Window) {
	fw, ok := window.(*fynehost.Window)
	if !ok {
		return
	}

	a.view = gui.NewMainView(s, window, a.logger, a.cfg.Application.Name, a.cfg.Application.Version)
	fw.Fyne().SetContent(a.view.Content())

	view := a.view
	a.fyneApp.Lifecycle().SetOnStarted(func() {
		view.Ready()
	})
}
