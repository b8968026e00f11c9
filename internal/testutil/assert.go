package testutil

import (
	"strings"
	"testing"
)

// AssertFileExists fails the test if the file does not exist.
func (w *TestWorkspace) AssertFileExists(relPath string) {
	w.t.Helper()
	if !w.FileExists(relPath) {
		w.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (w *TestWorkspace) AssertFileNotExists(relPath string) {
	w.t.Helper()
	if w.FileExists(relPath) {
		w.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (w *TestWorkspace) AssertFileContains(relPath, substr string) {
	w.t.Helper()
	content := w.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		w.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertPersonCount loads an address file and checks how many persons it holds.
func (w *TestWorkspace) AssertPersonCount(relPath string, expected int) {
	w.t.Helper()
	if got := len(w.LoadAddressBook(relPath)); got != expected {
		w.t.Errorf("address book %s: expected %d persons, got %d", relPath, expected, got)
	}
}

// AssertListCount runs 'list' and verifies the number of persons.
func (w *TestWorkspace) AssertListCount(expected int) {
	w.t.Helper()
	result := w.RunCLI("list")
	result.MustSucceed(w.t)

	persons := result.DataList("persons")
	if len(persons) != expected {
		w.t.Errorf("list: expected %d persons, got %d\nRaw: %s", expected, len(persons), result.RawJSON)
	}
}

// AssertHasWarning checks that the result contains a warning with the given code.
func (r *CLIResult) AssertHasWarning(t *testing.T, code string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Code == code {
			return
		}
	}
	t.Errorf("expected warning with code %s, got warnings: %+v", code, r.Warnings)
}

// AssertNoWarnings checks that the result has no warnings.
func (r *CLIResult) AssertNoWarnings(t *testing.T) {
	t.Helper()
	if len(r.Warnings) > 0 {
		t.Errorf("expected no warnings, got: %+v", r.Warnings)
	}
}
