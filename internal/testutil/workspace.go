// Package testutil provides reusable test utilities for addr integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/makery/addressapp/internal/model"
	"github.com/makery/addressapp/internal/storage"
)

// TestWorkspace is a temporary directory holding a config file, the
// preference state and any address files a test needs.
type TestWorkspace struct {
	Path   string
	t      *testing.T
	config string
	files  map[string]string
	books  map[string][]*model.Person
}

// NewTestWorkspace creates a new test workspace builder.
// Call Build() to create the actual directory.
func NewTestWorkspace(t *testing.T) *TestWorkspace {
	t.Helper()
	return &TestWorkspace{
		t:     t,
		files: make(map[string]string),
		books: make(map[string][]*model.Person),
	}
}

// WithConfig sets the config.toml content.
func (w *TestWorkspace) WithConfig(toml string) *TestWorkspace {
	w.config = toml
	return w
}

// WithFile adds a raw file, relative to the workspace root.
func (w *TestWorkspace) WithFile(path, content string) *TestWorkspace {
	w.files[path] = content
	return w
}

// WithAddressBook adds an XML address file holding persons.
func (w *TestWorkspace) WithAddressBook(path string, persons []*model.Person) *TestWorkspace {
	w.books[path] = persons
	return w
}

// Build creates the workspace directory and all configured files.
func (w *TestWorkspace) Build() *TestWorkspace {
	w.t.Helper()

	w.Path = w.t.TempDir()
	w.writeFile("config.toml", w.config)
	for path, content := range w.files {
		w.writeFile(path, content)
	}
	for path, persons := range w.books {
		full := w.Abs(path)
		w.mkdirFor(full)
		if err := storage.Save(full, persons); err != nil {
			w.t.Fatalf("failed to write address book %s: %v", path, err)
		}
	}
	return w
}

// Abs returns the absolute path of relPath inside the workspace.
func (w *TestWorkspace) Abs(relPath string) string {
	return filepath.Join(w.Path, relPath)
}

// ConfigPath is the config file every RunCLI call points at.
func (w *TestWorkspace) ConfigPath() string {
	return w.Abs("config.toml")
}

func (w *TestWorkspace) mkdirFor(fullPath string) {
	w.t.Helper()
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		w.t.Fatalf("failed to create directory %s: %v", dir, err)
	}
}

func (w *TestWorkspace) writeFile(relPath, content string) {
	w.t.Helper()
	fullPath := w.Abs(relPath)
	w.mkdirFor(fullPath)
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		w.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file from the workspace.
func (w *TestWorkspace) ReadFile(relPath string) string {
	w.t.Helper()
	content, err := os.ReadFile(w.Abs(relPath))
	if err != nil {
		w.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// LoadAddressBook reads an XML address file from the workspace.
func (w *TestWorkspace) LoadAddressBook(relPath string) []*model.Person {
	w.t.Helper()
	persons, err := storage.Load(w.Abs(relPath))
	if err != nil {
		w.t.Fatalf("failed to load address book %s: %v", relPath, err)
	}
	return persons
}

// FileExists checks if a file exists in the workspace.
func (w *TestWorkspace) FileExists(relPath string) bool {
	w.t.Helper()
	_, err := os.Stat(w.Abs(relPath))
	return err == nil
}

// MinimalConfig keeps preferences in a TOML state file next to config.toml.
func MinimalConfig() string {
	return `prefs_backend = "toml"
`
}

// SQLiteConfig keeps preferences in a SQLite database next to config.toml.
func SQLiteConfig() string {
	return `state_file = "state.db"
prefs_backend = "sqlite"
`
}

// Persons returns n placeholder persons named "First<i> Last<i>".
func Persons(n int) []*model.Person {
	out := make([]*model.Person, n)
	for i := range out {
		out[i] = model.New("First"+string(rune('A'+i)), "Last"+string(rune('A'+i)))
	}
	return out
}
