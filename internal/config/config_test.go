package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Application.LogLevel)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
application:
  log_level: debug
gui:
  theme: light
  width: 1024
window_state:
  path: /tmp/vyre-state.yml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Application.LogLevel = "debug"
	want.GUI.Theme = "light"
	want.GUI.Width = 1024
	want.WindowState.Path = "/tmp/vyre-state.yml"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "/tmp/vyre-state.yml", cfg.StatePath())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VYRE_LOG_LEVEL", "warn")
	t.Setenv("VYRE_WINDOW_HEIGHT", "900")
	t.Setenv("VYRE_WINDOW_STATE_PATH", "12345")

	cfg, err := Load(writeConfig(t, "gui:\n  theme: dark\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Application.LogLevel)
	assert.Equal(t, 900, cfg.GUI.Height)
	assert.Equal(t, "12345", cfg.WindowState.Path)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad level", "application:\n  log_level: loud\n", "log_level"},
		{"bad theme", "gui:\n  theme: neon\n", "theme"},
		{"tiny window", "gui:\n  width: 10\n", "width"},
		{"unknown section", "websocket:\n  url: wss://example\n", "websocket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "gui: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal yaml")
}

func TestStatePathDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "window-state.yml", filepath.Base(cfg.StatePath()))
}

func TestLoadEnvOverrideNotNumeric(t *testing.T) {
	t.Setenv("VYRE_WINDOW_WIDTH", "wide")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
}

func TestSetPath(t *testing.T) {
	doc := map[string]interface{}{"gui": "flat"}
	setPath(doc, []string{"gui", "theme"}, "light")
	setPath(doc, []string{"window_state", "path"}, "/tmp/state.yml")
	setPath(doc, []string{"gui", "width"}, 900)

	want := map[string]interface{}{
		"gui":          map[string]interface{}{"theme": "light", "width": 900},
		"window_state": map[string]interface{}{"path": "/tmp/state.yml"},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}
