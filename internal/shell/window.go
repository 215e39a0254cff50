package shell

import "errors"

// MainWindowLabel identifies the single top-level window the application manages.
const MainWindowLabel = "main"

var (
	// ErrWindowClosed is returned by Window.Close when the window is already
	// closing or gone.
	ErrWindowClosed = errors.New("window already closed")
	// ErrNoWindows is returned by Host.Run when there is nothing to show.
	ErrNoWindows = errors.New("no windows to show")
)

// EventKind enumerates window lifecycle events delivered by a Host.
type EventKind int

const (
	CloseRequested EventKind = iota + 1
	Destroyed
	Focused
)

func (k EventKind) String() string {
	switch k {
	case CloseRequested:
		return "close_requested"
	case Destroyed:
		return "destroyed"
	case Focused:
		return "focused"
	default:
		return "unknown"
	}
}

// Event is a single window lifecycle notification.
type Event struct {
	Kind    EventKind
	// Focused carries the new focus state for Focused events.
	Focused bool
}

// EventHandler receives window events on the host's event loop.
type EventHandler func(Event)

// Geometry is the persisted shape of a window.
type Geometry struct {
	Width      float32 `yaml:"width"`
	Height     float32 `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
}

// Valid reports whether the geometry is worth restoring.
func (g Geometry) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// Window is a non-owning reference to a host window. Application code obtains
// one through Host.Window and never creates or destroys it.
type Window interface {
	Label() string
	Close() error
	OnEvent(EventHandler)
	Geometry() Geometry
	SetGeometry(Geometry)
}

// Host is the native windowing runtime the shell drives.
type Host interface {
	// Window looks up a window by label.
	Window(label string) (Window, bool)
	// Run blocks until the last window closes.
	Run() error
}
