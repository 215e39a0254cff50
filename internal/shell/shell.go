package shell

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrAlreadyRunning = errors.New("shell already running")
)

// Invocation is the per-call context handed to a command handler.
type Invocation struct {
	Context context.Context
	ID      string
	// Window is the window the call originated from; nil when the caller has none.
	Window  Window
}

// Handler implements a command callable from the content layer.
type Handler func(inv Invocation) (any, error)

// Invoker dispatches commands by name.
type Invoker interface {
	Invoke(ctx context.Context, name string, window Window) (any, error)
}

// Extension hooks into the shell before the setup function runs.
type Extension interface {
	Name() string
	Setup(s *Shell) error
}

// SetupFunc runs once, after extensions, before the run loop starts.
type SetupFunc func(s *Shell) error

// Shell owns the command registry, the extensions and the setup hook, and
// hands control to the Host's run loop.
type Shell struct {
	host   Host
	logger *zap.Logger

	mu         sync.RWMutex
	handlers   map[string]Handler
	extensions []Extension
	setup      SetupFunc
	running    bool
}

// New creates a shell on top of host.
func New(host Host, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		host:     host,
		logger:   logger,
		handlers: make(map[string]Handler),
	}
}

// Handle registers a command. Registering the same name twice panics.
func (s *Shell) Handle(name string, h Handler) {
	if name == "" || h == nil {
		panic("shell: invalid command registration")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.handlers[name]; exists {
		panic(fmt.Sprintf("shell: command %q registered twice", name))
	}
	s.handlers[name] = h
}

// Commands returns the registered command names in sorted order.
func (s *Shell) Commands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Use registers an extension. Extensions are set up in registration order.
func (s *Shell) Use(ext Extension) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extensions = append(s.extensions, ext)
}

// OnSetup sets the setup hook, replacing any previous one.
func (s *Shell) OnSetup(fn SetupFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setup = fn
}

// Window looks up a host window by label.
func (s *Shell) Window(label string) (Window, bool) {
	return s.host.Window(label)
}

// Invoke dispatches the named command on behalf of window.
func (s *Shell) Invoke(ctx context.Context, name string, window Window) (any, error) {
	s.mu.RLock()
	h, ok := s.handlers[name]
	s.mu.RUnlock()

	if !ok {
		s.logger.Warn("Unknown command invoked", zap.String("command", name))
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	inv := Invocation{
		Context: ctx,
		ID:      uuid.NewString(),
		Window:  window,
	}

	s.logger.Debug("Command invoked",
		zap.String("command", name),
		zap.String("invocation_id", inv.ID))

	result, err := h(inv)
	if err != nil {
		return nil, fmt.Errorf("command %s: %w", name, err)
	}
	return result, nil
}

// Run sets up extensions, runs the setup hook and blocks in the host's run
// loop until the last window closes.
func (s *Shell) Run() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	extensions := append([]Extension(nil), s.extensions...)
	setup := s.setup
	s.mu.Unlock()

	for _, ext := range extensions {
		if err := ext.Setup(s); err != nil {
			return fmt.Errorf("setup extension %s: %w", ext.Name(), err)
		}
		s.logger.Debug("Extension ready", zap.String("extension", ext.Name()))
	}

	if setup != nil {
		if err := setup(s); err != nil {
			return fmt.Errorf("setup: %w", err)
		}
	}

	if err := s.host.Run(); err != nil {
		return fmt.Errorf("run loop: %w", err)
	}
	return nil
}
