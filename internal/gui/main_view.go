// Package gui builds the content shown in the main window. It reaches the
// backend only through shell commands.
package gui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/vyre/desktop/internal/commands"
	"github.com/vyre/desktop/internal/shell"
)

const (
	StatusStarting    = "Starting"
	StatusReady       = "Backend ready"
	StatusUnavailable = "Backend unavailable"
)

// MainView is the main window content.
type MainView struct {
	invoker shell.Invoker
	window  shell.Window
	logger  *zap.Logger

	StatusBinding binding.String
	topBar        *TopBar
	closeButton   *widget.Button
	content       fyne.CanvasObject
}

// NewMainView builds the view for window. name and version label the bottom bar.
func NewMainView(invoker shell.Invoker, window shell.Window, logger *zap.Logger, name, version string) *MainView {
	v := &MainView{
		invoker:       invoker,
		window:        window,
		logger:        logger,
		StatusBinding: binding.NewString(),
	}
	v.StatusBinding.Set(StatusStarting)

	v.topBar = NewTopBar(v.StatusBinding)
	v.closeButton = widget.NewButton("Close", v.Close)
	v.closeButton.Importance = widget.DangerImportance

	v.content = container.NewBorder(
		v.topBar.Object(),
		CreateBottomBar(name, version, v.closeButton),
		nil, nil,
		widget.NewLabel("Welcome to "+name),
	)
	return v
}

// Content returns the root canvas object.
func (v *MainView) Content() fyne.CanvasObject {
	return v.content
}

// Ready asks the backend whether it is up and reflects the answer in the status bar.
func (v *MainView) Ready() bool {
	result, err := v.invoker.Invoke(context.Background(), commands.BackendReady, v.window)
	if err != nil {
		v.logger.Warn("Backend readiness check failed", zap.Error(err))
		v.StatusBinding.Set(StatusUnavailable)
		return false
	}

	ready, _ := result.(bool)
	if ready {
		v.StatusBinding.Set(StatusReady)
	} else {
		v.StatusBinding.Set(StatusUnavailable)
	}
	return ready
}

// Close asks the backend to close this view's window.
func (v *MainView) Close() {
	if _, err := v.invoker.Invoke(context.Background(), commands.CloseWindow, v.window); err != nil {
		v.logger.Warn("Close command failed", zap.Error(err))
	}
}
