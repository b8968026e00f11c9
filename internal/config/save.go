package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/makery/addressapp/internal/atomicfile"
)

type persistedConfig struct {
	StateFile    *string              `toml:"state_file,omitempty"`
	PrefsBackend *string              `toml:"prefs_backend,omitempty"`
	Editor       *string              `toml:"editor,omitempty"`
	UI           *persistedUISettings `toml:"ui,omitempty"`
	Log          *persistedLog        `toml:"log,omitempty"`
}

type persistedUISettings struct {
	Accent *string `toml:"accent,omitempty"`
}

type persistedLog struct {
	Level  *string `toml:"level,omitempty"`
	Format *string `toml:"format,omitempty"`
	File   *string `toml:"file,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes the global config to a specific path atomically.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		StateFile:    nonEmptyPtr(cfg.StateFile),
		PrefsBackend: nonEmptyPtr(cfg.PrefsBackend),
		Editor:       nonEmptyPtr(cfg.Editor),
	}

	if accent := nonEmptyPtr(cfg.UI.Accent); accent != nil {
		out.UI = &persistedUISettings{Accent: accent}
	}

	level, format, file := nonEmptyPtr(cfg.Log.Level), nonEmptyPtr(cfg.Log.Format), nonEmptyPtr(cfg.Log.File)
	if level != nil || format != nil || file != nil {
		out.Log = &persistedLog{Level: level, Format: format, File: file}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}
