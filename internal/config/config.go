// Package config handles global address book configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// AppName namespaces every file the application keeps in the user config dir.
const AppName = "addressapp"

// Preference store backends.
const (
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"
)

// Config represents the global configuration.
type Config struct {
	// StateFile overrides where durable preferences are kept.
	// Relative paths are resolved against the config file directory.
	StateFile string `toml:"state_file"`

	// PrefsBackend selects the preference store: "toml" (default) or "sqlite".
	PrefsBackend string `toml:"prefs_backend"`

	// Editor is used by 'addr edit' (defaults to $EDITOR).
	Editor string `toml:"editor"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`

	// Log controls diagnostic logging.
	Log LogConfig `toml:"log"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color: ANSI code ("0" to "255") or "#RRGGBB".
	Accent string `toml:"accent"`
}

// LogConfig mirrors the --log-* flags.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Backend returns the normalized preference backend name.
func (c *Config) Backend() (string, error) {
	switch b := strings.ToLower(strings.TrimSpace(c.PrefsBackend)); b {
	case "", BackendTOML:
		return BackendTOML, nil
	case BackendSQLite:
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unknown prefs_backend %q (want %q or %q)", c.PrefsBackend, BackendTOML, BackendSQLite)
	}
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/addressapp/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", AppName, "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, AppName, "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a commented config file at path if it doesn't exist.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# Address book configuration

# Where the last opened file is remembered (default: state.toml next to this file)
# state_file = "state.toml"

# Preference store: "toml" or "sqlite"
# prefs_backend = "toml"

# Editor for 'addr edit' (defaults to $EDITOR)
# editor = "vim"

# [ui]
# accent = "39"

# [log]
# level = "warn"     # debug, info, warn, error
# format = "text"    # text or json
# file = ""          # append logs to this file instead of stderr
`

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}

// GetEditor returns the editor to use, falling back to $EDITOR.
func (c *Config) GetEditor() string {
	if c.Editor != "" {
		return c.Editor
	}
	return os.Getenv("EDITOR")
}
