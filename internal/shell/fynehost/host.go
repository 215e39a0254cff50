// Package fynehost adapts a Fyne application to the shell.Host interface.
package fynehost

import (
	"fmt"
	"sort"
	"sync"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"github.com/vyre/desktop/internal/shell"
)

// Host indexes Fyne windows by label and forwards their lifecycle to shell
// event handlers.
type Host struct {
	app    fyne.App
	logger *zap.Logger

	mu      sync.Mutex
	windows map[string]*Window
}

// New wraps app. Foreground changes of the application are delivered to every
// open window as Focused events.
func New(app fyne.App, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Host{
		app:     app,
		logger:  logger,
		windows: make(map[string]*Window),
	}

	if lc := app.Lifecycle(); lc != nil {
		lc.SetOnEnteredForeground(func() { h.broadcast(shell.Event{Kind: shell.Focused, Focused: true}) })
		lc.SetOnExitedForeground(func() { h.broadcast(shell.Event{Kind: shell.Focused, Focused: false}) })
	}

	return h
}

// NewWindow creates a Fyne window and indexes it under label. An existing
// window with the same label is returned unchanged.
func (h *Host) NewWindow(label, title string) *Window {
	h.mu.Lock()
	defer h.mu.Unlock()

	if w, ok := h.windows[label]; ok {
		return w
	}

	w := &Window{
		label: label,
		fw:    h.app.NewWindow(title),
		host:  h,
	}
	w.fw.SetCloseIntercept(func() {
		if err := w.Close(); err != nil {
			h.logger.Debug("Close intercept ignored", zap.String("window", label), zap.Error(err))
		}
	})
	w.fw.SetOnClosed(func() {
		// Fyne closed the window without going through Close (driver close,
		// app quit), so CloseRequested has not been sent yet.
		if w.markClosing() {
			w.emit(shell.Event{Kind: shell.CloseRequested})
		}
		h.remove(label)
		w.emit(shell.Event{Kind: shell.Destroyed})
	})

	h.windows[label] = w
	return w
}

// Window implements shell.Host.
func (h *Host) Window(label string) (shell.Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	w, ok := h.windows[label]
	if !ok {
		return nil, false
	}
	return w, true
}

// Labels returns the labels of the open windows, sorted.
func (h *Host) Labels() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	labels := make([]string, 0, len(h.windows))
	for label := range h.windows {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Run shows every indexed window and blocks in the Fyne event loop. A panic
// raised by the driver is returned as an error.
func (h *Host) Run() (err error) {
	h.mu.Lock()
	windows := make([]*Window, 0, len(h.windows))
	for _, w := range h.windows {
		windows = append(windows, w)
	}
	h.mu.Unlock()

	if len(windows) == 0 {
		return shell.ErrNoWindows
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fyne driver: %v", r)
		}
	}()

	for _, w := range windows {
		w.fw.Show()
	}
	h.app.Run()
	return nil
}

func (h *Host) remove(label string) {
	h.mu.Lock()
	delete(h.windows, label)
	h.mu.Unlock()
}

func (h *Host) broadcast(ev shell.Event) {
	h.mu.Lock()
	windows := make([]*Window, 0, len(h.windows))
	for _, w := range h.windows {
		windows = append(windows, w)
	}
	h.mu.Unlock()

	for _, w := range windows {
		w.emit(ev)
	}
}
