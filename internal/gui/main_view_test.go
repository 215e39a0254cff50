package gui

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vyre/desktop/internal/commands"
	"github.com/vyre/desktop/internal/shell"
	"github.com/vyre/desktop/internal/shell/shelltest"
)

type stubInvoker struct {
	result any
	err    error
	calls  []string
}

func (s *stubInvoker) Invoke(_ context.Context, name string, _ shell.Window) (any, error) {
	s.calls = append(s.calls, name)
	return s.result, s.err
}

func status(t *testing.T, v *MainView) string {
	t.Helper()
	got, err := v.StatusBinding.Get()
	require.NoError(t, err)
	return got
}

func TestReadyAgainstBackend(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	host := shelltest.NewHost(shell.MainWindowLabel)
	s := shell.New(host, zap.NewNop())
	commands.Register(s, zap.NewNop())

	win, _ := s.Window(shell.MainWindowLabel)
	v := NewMainView(s, win, zap.NewNop(), "Vyre", "0.1.0")
	assert.Equal(t, StatusStarting, status(t, v))

	assert.True(t, v.Ready())
	assert.Equal(t, StatusReady, status(t, v))
	assert.NotNil(t, v.Content())
}

func TestReadyFailure(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	inv := &stubInvoker{err: errors.New("unreachable")}
	v := NewMainView(inv, nil, zap.NewNop(), "Vyre", "0.1.0")

	assert.False(t, v.Ready())
	assert.Equal(t, StatusUnavailable, status(t, v))

	inv.err = nil
	inv.result = false
	assert.False(t, v.Ready())
	assert.Equal(t, []string{commands.BackendReady, commands.BackendReady}, inv.calls)
}

func TestCloseButtonClosesWindow(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	host := shelltest.NewHost(shell.MainWindowLabel)
	s := shell.New(host, zap.NewNop())
	commands.Register(s, zap.NewNop())

	tw := host.Get(shell.MainWindowLabel)
	v := NewMainView(s, tw, zap.NewNop(), "Vyre", "0.1.0")

	test.Tap(v.closeButton)
	assert.True(t, tw.Closed())
}
