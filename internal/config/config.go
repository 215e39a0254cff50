package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	Application Application `yaml:"application"`
	GUI         GUI         `yaml:"gui"`
	WindowState WindowState `yaml:"window_state"`
}

type Application struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	LogLevel string `yaml:"log_level"`
}

type GUI struct {
	AppID      string `yaml:"app_id"`
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Theme      string `yaml:"theme"`
	MainWindow string `yaml:"main_window"`
}

type WindowState struct {
	Enabled bool   `yaml:"enabled"`
	// Path of the state file; empty means the user config directory.
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Application: Application{
			Name:     "Vyre",
			Version:  "0.1.0",
			LogLevel: "info",
		},
		GUI: GUI{
			AppID:      "com.vyre.desktop",
			Title:      "Vyre",
			Width:      1200,
			Height:     800,
			Theme:      "dark",
			MainWindow: "main",
		},
		WindowState: WindowState{
			Enabled: true,
		},
	}
}

// StatePath resolves the window state file location.
func (c *Config) StatePath() string {
	if c.WindowState.Path != "" {
		return c.WindowState.Path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "vyre", "window-state.yml")
}
