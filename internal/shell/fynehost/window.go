package fynehost

import (
	"sync"

	"fyne.io/fyne/v2"

	"github.com/vyre/desktop/internal/shell"
)

// Window is a labelled Fyne window.
type Window struct {
	label string
	fw    fyne.Window
	host  *Host

	mu       sync.Mutex
	handlers []shell.EventHandler
	closing  bool
}

// Label returns the label the window is indexed under.
func (w *Window) Label() string {
	return w.label
}

// Fyne returns the underlying Fyne window, for setting content.
func (w *Window) Fyne() fyne.Window {
	return w.fw
}

// Close emits CloseRequested and closes the Fyne window. Destroyed follows
// from the window's OnClosed callback.
func (w *Window) Close() error {
	if !w.markClosing() {
		return shell.ErrWindowClosed
	}

	w.emit(shell.Event{Kind: shell.CloseRequested})
	w.fw.Close()
	return nil
}

// markClosing flips the window into the closing state. It reports false when
// the window was already closing or destroyed.
func (w *Window) markClosing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closing {
		return false
	}
	w.closing = true
	return true
}

// OnEvent subscribes h to the window's lifecycle events.
func (w *Window) OnEvent(h shell.EventHandler) {
	if h == nil {
		return
	}
	w.mu.Lock()
	w.handlers = append(w.handlers, h)
	w.mu.Unlock()
}

// Geometry reads the current canvas size and fullscreen state.
func (w *Window) Geometry() shell.Geometry {
	size := w.fw.Canvas().Size()
	return shell.Geometry{
		Width:      size.Width,
		Height:     size.Height,
		Fullscreen: w.fw.FullScreen(),
	}
}

// SetGeometry resizes the window when g carries a usable size, then applies
// the fullscreen flag.
func (w *Window) SetGeometry(g shell.Geometry) {
	if g.Valid() {
		w.fw.Resize(fyne.NewSize(g.Width, g.Height))
	}
	w.fw.SetFullScreen(g.Fullscreen)
}

func (w *Window) emit(ev shell.Event) {
	w.mu.Lock()
	handlers := append([]shell.EventHandler(nil), w.handlers...)
	w.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}
