package shell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vyre/desktop/internal/shell"
	"github.com/vyre/desktop/internal/shell/shelltest"
)

type recordingExtension struct {
	name  string
	calls *[]string
	err   error
}

func (e recordingExtension) Name() string { return e.name }

func (e recordingExtension) Setup(*shell.Shell) error {
	*e.calls = append(*e.calls, e.name)
	return e.err
}

func TestInvokeDispatchesToHandler(t *testing.T) {
	host := shelltest.NewHost(shell.MainWindowLabel)
	s := shell.New(host, zap.NewNop())

	var got shell.Invocation
	s.Handle("echo", func(inv shell.Invocation) (any, error) {
		got = inv
		return "pong", nil
	})

	win, ok := s.Window(shell.MainWindowLabel)
	require.True(t, ok)

	result, err := s.Invoke(context.Background(), "echo", win)
	require.NoError(t, err)
	assert.Equal(t, "pong", result)
	assert.Equal(t, shell.MainWindowLabel, got.Window.Label())
	_, parseErr := uuid.Parse(got.ID)
	assert.NoError(t, parseErr, "invocation id should be a uuid")
	assert.NotNil(t, got.Context)
}

func TestInvokeUnknownCommand(t *testing.T) {
	s := shell.New(shelltest.NewHost(), zap.NewNop())

	_, err := s.Invoke(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shell.ErrUnknownCommand))
	assert.Contains(t, err.Error(), "missing")
}

func TestInvokeWrapsHandlerError(t *testing.T) {
	s := shell.New(shelltest.NewHost(), zap.NewNop())
	boom := errors.New("boom")
	s.Handle("fail", func(shell.Invocation) (any, error) { return nil, boom })

	_, err := s.Invoke(nil, "fail", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "command fail")
}

func TestHandleDuplicatePanics(t *testing.T) {
	s := shell.New(shelltest.NewHost(), nil)
	s.Handle("a", func(shell.Invocation) (any, error) { return nil, nil })

	assert.Panics(t, func() {
		s.Handle("a", func(shell.Invocation) (any, error) { return nil, nil })
	})
	assert.Panics(t, func() { s.Handle("", nil) })
}

func TestCommandsSorted(t *testing.T) {
	s := shell.New(shelltest.NewHost(), nil)
	noop := func(shell.Invocation) (any, error) { return nil, nil }
	s.Handle("zeta", noop)
	s.Handle("alpha", noop)

	assert.Equal(t, []string{"alpha", "zeta"}, s.Commands())
}

func TestRunOrder(t *testing.T) {
	host := shelltest.NewHost(shell.MainWindowLabel)
	s := shell.New(host, nil)

	var calls []string
	s.Use(recordingExtension{name: "first", calls: &calls})
	s.Use(recordingExtension{name: "second", calls: &calls})
	s.OnSetup(func(*shell.Shell) error {
		calls = append(calls, "setup")
		return nil
	})
	host.OnRun = func(*shelltest.Host) { calls = append(calls, "run") }

	require.NoError(t, s.Run())
	assert.Equal(t, []string{"first", "second", "setup", "run"}, calls)
}

func TestRunExtensionFailureAborts(t *testing.T) {
	host := shelltest.NewHost()
	s := shell.New(host, nil)

	var calls []string
	boom := errors.New("boom")
	s.Use(recordingExtension{name: "broken", calls: &calls, err: boom})
	s.OnSetup(func(*shell.Shell) error {
		calls = append(calls, "setup")
		return nil
	})

	err := s.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, []string{"broken"}, calls)
	assert.Zero(t, host.Runs())
}

func TestRunPropagatesHostError(t *testing.T) {
	host := shelltest.NewHost()
	host.RunErr = errors.New("no display")
	s := shell.New(host, nil)

	err := s.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, host.RunErr)
}

func TestRunTwice(t *testing.T) {
	s := shell.New(shelltest.NewHost(), nil)
	require.NoError(t, s.Run())
	assert.ErrorIs(t, s.Run(), shell.ErrAlreadyRunning)
}

func TestGeometryValid(t *testing.T) {
	assert.True(t, shell.Geometry{Width: 10, Height: 10}.Valid())
	assert.False(t, shell.Geometry{Width: 0, Height: 10}.Valid())
	assert.False(t, shell.Geometry{Width: 10, Height: -1}.Valid())
}
