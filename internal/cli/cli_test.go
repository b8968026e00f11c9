package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/makery/addressapp/internal/app"
	"github.com/makery/addressapp/internal/prefs"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

// useTestShell installs a fresh shell backed by an in-memory preference store
// and restores the package globals afterwards.
func useTestShell(t *testing.T, jsonMode bool) *prefs.MemoryStore {
	t.Helper()
	prevShell, prevJSON, prevSession := shell, jsonOutput, inSession
	t.Cleanup(func() {
		shell, jsonOutput, inSession = prevShell, prevJSON, prevSession
	})

	store := prefs.NewMemoryStore()
	shell = app.New(app.Options{Prefs: store})
	jsonOutput = jsonMode
	inSession = false
	return store
}

type testResponse struct {
	OK       bool            `json:"ok"`
	Data     json.RawMessage `json:"data"`
	Error    *ErrorInfo      `json:"error"`
	Warnings []Warning       `json:"warnings"`
	Meta     *Meta           `json:"meta"`
}

func decodeResponse(t *testing.T, out string) testResponse {
	t.Helper()
	var resp testResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	return resp
}

func expectErrorCode(t *testing.T, out, code string) testResponse {
	t.Helper()
	resp := decodeResponse(t, out)
	if resp.OK || resp.Error == nil {
		t.Fatalf("expected error response, got %s", out)
	}
	if resp.Error.Code != code {
		t.Fatalf("error code = %q, want %q (%s)", resp.Error.Code, code, resp.Error.Message)
	}
	return resp
}
