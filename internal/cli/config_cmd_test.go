package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/makery/addressapp/internal/config"
)

func useTestConfigPath(t *testing.T) string {
	t.Helper()
	prevConfig, prevState, prevJSON := configPath, statePathFlag, jsonOutput
	t.Cleanup(func() {
		configPath, statePathFlag, jsonOutput = prevConfig, prevState, prevJSON
		resetFlags(configCmd)
	})

	configPath = filepath.Join(t.TempDir(), "config.toml")
	statePathFlag = ""
	jsonOutput = true
	return configPath
}

func TestConfigInitCreatesOnce(t *testing.T) {
	path := useTestConfigPath(t)

	for i, wantCreated := range []bool{true, false} {
		out := captureStdout(t, func() {
			if err := configInitCmd.RunE(configInitCmd, nil); err != nil {
				t.Fatalf("configInitCmd.RunE: %v", err)
			}
		})
		var data struct {
			ConfigPath string `json:"config_path"`
			Created    bool   `json:"created"`
		}
		if err := json.Unmarshal(decodeResponse(t, out).Data, &data); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if data.ConfigPath != path || data.Created != wantCreated {
			t.Fatalf("run %d: got %+v, want created=%v", i, data, wantCreated)
		}
	}

	if _, err := config.LoadFrom(path); err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
}

func TestConfigSetAndUnset(t *testing.T) {
	path := useTestConfigPath(t)

	if err := configSetCmd.Flags().Set("prefs-backend", "sqlite"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := configSetCmd.Flags().Set("editor", "nano"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	out := captureStdout(t, func() {
		if err := configSetCmd.RunE(configSetCmd, nil); err != nil {
			t.Fatalf("configSetCmd.RunE: %v", err)
		}
	})
	if resp := decodeResponse(t, out); !resp.OK {
		t.Fatalf("config set failed: %s", out)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.PrefsBackend != "sqlite" || cfg.Editor != "nano" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	if err := configUnsetCmd.Flags().Set("editor", "true"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	captureStdout(t, func() {
		if err := configUnsetCmd.RunE(configUnsetCmd, nil); err != nil {
			t.Fatalf("configUnsetCmd.RunE: %v", err)
		}
	})

	cfg, err = config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Editor != "" || cfg.PrefsBackend != "sqlite" {
		t.Fatalf("unexpected config after unset: %+v", cfg)
	}
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	useTestConfigPath(t)

	out := captureStdout(t, func() {
		if err := configSetCmd.RunE(configSetCmd, nil); err != nil {
			t.Fatalf("configSetCmd.RunE: %v", err)
		}
	})
	expectErrorCode(t, out, ErrMissingArgument)

	if err := configSetCmd.Flags().Set("prefs-backend", "redis"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	out = captureStdout(t, func() {
		if err := configSetCmd.RunE(configSetCmd, nil); err != nil {
			t.Fatalf("configSetCmd.RunE: %v", err)
		}
	})
	expectErrorCode(t, out, ErrInvalidInput)
}

func TestConfigUnsetRequiresFile(t *testing.T) {
	useTestConfigPath(t)

	if err := configUnsetCmd.Flags().Set("editor", "true"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	out := captureStdout(t, func() {
		if err := configUnsetCmd.RunE(configUnsetCmd, nil); err != nil {
			t.Fatalf("configUnsetCmd.RunE: %v", err)
		}
	})
	expectErrorCode(t, out, ErrFileReadError)
}
