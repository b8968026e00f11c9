package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigGetEditor(t *testing.T) {
	t.Run("configured editor", func(t *testing.T) {
		cfg := &Config{Editor: "vim"}
		if cfg.GetEditor() != "vim" {
			t.Errorf("expected 'vim', got %q", cfg.GetEditor())
		}
	})

	t.Run("falls back to EDITOR env", func(t *testing.T) {
		t.Setenv("EDITOR", "nano")
		cfg := &Config{}
		if cfg.GetEditor() != "nano" {
			t.Errorf("expected 'nano', got %q", cfg.GetEditor())
		}
	})

	t.Run("empty when no editor configured", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		cfg := &Config{}
		if cfg.GetEditor() != "" {
			t.Errorf("expected empty string, got %q", cfg.GetEditor())
		}
	})
}

func TestConfigBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: BackendTOML},
		{in: "toml", want: BackendTOML},
		{in: " SQLite ", want: BackendSQLite},
		{in: "registry", wantErr: true},
	}
	for _, tt := range tests {
		got, err := (&Config{PrefsBackend: tt.in}).Backend()
		if tt.wantErr {
			if err == nil {
				t.Fatalf("Backend(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("Backend(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestLoadFrom(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `state_file = "state.toml"
prefs_backend = "sqlite"
editor = "code"

[ui]
accent = "39"

[log]
level = "info"
format = "json"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.StateFile != "state.toml" {
		t.Errorf("expected state_file 'state.toml', got %q", cfg.StateFile)
	}
	if cfg.PrefsBackend != "sqlite" {
		t.Errorf("expected prefs_backend 'sqlite', got %q", cfg.PrefsBackend)
	}
	if cfg.Editor != "code" {
		t.Errorf("expected editor 'code', got %q", cfg.Editor)
	}
	if cfg.UI.Accent != "39" {
		t.Errorf("expected ui.accent '39', got %q", cfg.UI.Accent)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `this is not valid toml {{{{`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestDefaultPathIsScopedToApp(t *testing.T) {
	path := DefaultPath()
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected config.toml, got %s", filepath.Base(path))
	}
	if !strings.Contains(path, AppName) && !strings.HasPrefix(path, ".") {
		t.Errorf("expected path under %q, got %s", AppName, path)
	}
}

func TestCreateDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	created, err := CreateDefault(path)
	if err != nil || !created {
		t.Fatalf("CreateDefault = %v, %v; want true, nil", created, err)
	}
	if _, err := LoadFrom(path); err != nil {
		t.Fatalf("default config should parse: %v", err)
	}

	created, err = CreateDefault(path)
	if err != nil || created {
		t.Fatalf("second CreateDefault = %v, %v; want false, nil", created, err)
	}
}
