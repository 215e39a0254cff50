// Package shelltest provides an in-memory shell.Host for tests.
package shelltest

import (
	"errors"
	"sync"

	"github.com/vyre/desktop/internal/shell"
)

// Host is a headless shell.Host. Run returns as soon as every window is
// closed, which for a host with no windows is immediately.
type Host struct {
	mu      sync.Mutex
	windows map[string]*Window
	runs    int
	// RunErr, when set, is returned by Run.
	RunErr  error
	// OnRun, when set, is called from Run before it returns. Tests use it to
	// drive windows as if the run loop were live.
	OnRun   func(h *Host)
}

// NewHost returns a host holding windows with the given labels.
func NewHost(labels ...string) *Host {
	h := &Host{windows: make(map[string]*Window)}
	for _, label := range labels {
		h.AddWindow(label)
	}
	return h
}

// AddWindow creates and indexes a window.
func (h *Host) AddWindow(label string) *Window {
	w := &Window{label: label, host: h, geometry: shell.Geometry{Width: 800, Height: 600}}
	h.mu.Lock()
	h.windows[label] = w
	h.mu.Unlock()
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

// Get returns the concrete test window, for assertions.
func (h *Host) Get(label string) *Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.windows[label]
}

// Runs reports how many times Run was called.
func (h *Host) Runs() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.runs
}

// Run implements shell.Host.
func (h *Host) Run() error {
	h.mu.Lock()
	h.runs++
	h.mu.Unlock()

	if h.RunErr != nil {
		return h.RunErr
	}
	if h.OnRun != nil {
		h.OnRun(h)
	}
	return nil
}

func (h *Host) remove(label string) {
	h.mu.Lock()
	delete(h.windows, label)
	h.mu.Unlock()
}

// Window is an in-memory shell.Window.
type Window struct {
	label    string
	host     *Host
	mu       sync.Mutex
	handlers []shell.EventHandler
	geometry shell.Geometry
	closed   bool
	// CloseErr, when set, is returned by Close and the window stays open.
	CloseErr error
}

func (w *Window) Label() string { return w.label }

// Close emits CloseRequested then Destroyed, like a host whose default close
// behavior proceeds.
func (w *Window) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return shell.ErrWindowClosed
	}
	if w.CloseErr != nil {
		err := w.CloseErr
		w.mu.Unlock()
		return err
	}
	w.mu.Unlock()

	w.Emit(shell.Event{Kind: shell.CloseRequested})

	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	w.host.remove(w.label)
	w.Emit(shell.Event{Kind: shell.Destroyed})
	return nil
}

// Closed reports whether Close completed.
func (w *Window) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *Window) OnEvent(h shell.EventHandler) {
	w.mu.Lock()
	w.handlers = append(w.handlers, h)
	w.mu.Unlock()
}

func (w *Window) Geometry() shell.Geometry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.geometry
}

func (w *Window) SetGeometry(g shell.Geometry) {
	w.mu.Lock()
	w.geometry = g
	w.mu.Unlock()
}

// Emit delivers ev to every registered handler in order.
func (w *Window) Emit(ev shell.Event) {
	w.mu.Lock()
	handlers := append([]shell.EventHandler(nil), w.handlers...)
	w.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// ErrCloseFailed is a convenience error for tests simulating a failed close.
var ErrCloseFailed = errors.New("close failed")
