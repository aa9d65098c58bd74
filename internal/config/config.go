// Package config loads and saves the lightbar configuration: key bindings,
// theme colors and glyphs, and UI settings. Files are TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/pelletier/go-toml/v2"

	"lightbar/internal/ui/selector"
)

// Config represents the application configuration
type Config struct {
	Version int         `toml:"version"`
	Keys    KeysConfig  `toml:"keys"`
	Theme   ThemeConfig `toml:"theme"`
	UI      UISettings  `toml:"ui"`
}

// KeysConfig lists the recognized keystrokes per navigation action. An empty
// list keeps the default binding for that action.
type KeysConfig struct {
	Up       []string `toml:"up"`
	Down     []string `toml:"down"`
	PageUp   []string `toml:"page_up"`
	PageDown []string `toml:"page_down"`
	Home     []string `toml:"home"`
	End      []string `toml:"end"`
	Exit     []string `toml:"exit"`
}

// ThemeConfig holds color tokens and glyphs for the render layer
type ThemeConfig struct {
	Highlight string `toml:"highlight"`
	Lowlight  string `toml:"lowlight"`
	Normal    string `toml:"normal"`
	Fill      string `toml:"fill"`
	Pad       string `toml:"pad"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Height int  `toml:"height"`
	Silent bool `toml:"silent"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Version: 1,
		Theme: ThemeConfig{
			Highlight: "220",
			Lowlight:  "252",
			Normal:    "241",
			Fill:      "░",
			Pad:       " ",
		},
		UI: UISettings{
			Height: 10,
		},
	}
}

// KeyMap builds a selector keymap from the configured lists, keeping the
// default binding for every action left empty. The result is a fresh value;
// nothing is shared with DefaultKeyMap.
func (k KeysConfig) KeyMap() selector.KeyMap {
	km := selector.DefaultKeyMap
	bind(&km.Up, k.Up, "up")
	bind(&km.Down, k.Down, "down")
	bind(&km.PageUp, k.PageUp, "page up")
	bind(&km.PageDown, k.PageDown, "page down")
	bind(&km.Home, k.Home, "first")
	bind(&km.End, k.End, "last")
	bind(&km.Exit, k.Exit, "exit")
	return km
}

func bind(b *key.Binding, keys []string, action string) {
	if len(keys) == 0 {
		return
	}
	*b = key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), action),
	)
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(cfg *Config, path string) error
}

type service struct {
	filePath string
}

// NewService creates a config service rooted at the user config directory
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return &service{
		filePath: filepath.Join(configDir, "lightbar", "lightbar.toml"),
	}
}

// Load reads the configuration from the default path, falling back to the
// built-in defaults when no file exists yet.
func (s *service) Load() (*Config, error) {
	return s.LoadFromPath(s.filePath)
}

// Save writes the configuration to the default path
func (s *service) Save(cfg *Config) error {
	return s.SaveToPath(cfg, s.filePath)
}

// LoadFromPath reads the configuration from a specific file
func (s *service) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep their built-in values
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath writes the configuration to a specific file
func (s *service) SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
