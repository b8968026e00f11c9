package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/makery/addressapp/internal/buildinfo"
)

func TestVersionCommandJSONOutput(t *testing.T) {
	prevJSON := jsonOutput
	t.Cleanup(func() { jsonOutput = prevJSON })
	jsonOutput = true

	out := captureStdout(t, func() {
		if err := versionCmd.RunE(versionCmd, nil); err != nil {
			t.Fatalf("versionCmd.RunE: %v", err)
		}
	})

	var info buildinfo.Info
	if err := json.Unmarshal(decodeResponse(t, out).Data, &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Version == "" || info.ModulePath == "" {
		t.Fatalf("expected version and module path, got %+v", info)
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Fatalf("GoVersion = %q", info.GoVersion)
	}
}

func TestVersionCommandText(t *testing.T) {
	prevJSON := jsonOutput
	t.Cleanup(func() { jsonOutput = prevJSON })
	jsonOutput = false

	out := captureStdout(t, func() {
		if err := versionCmd.RunE(versionCmd, nil); err != nil {
			t.Fatalf("versionCmd.RunE: %v", err)
		}
	})
	if !strings.Contains(out, "addr") || !strings.Contains(out, "platform") {
		t.Fatalf("unexpected version output:\n%s", out)
	}
}
