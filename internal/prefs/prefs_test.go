package prefs

import (
	"path/filepath"
	"testing"

	"github.com/makery/addressapp/internal/config"
)

func storeFactories(t *testing.T) map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"toml": func(t *testing.T) Store {
			return NewTOMLStore(filepath.Join(t.TempDir(), "state.toml"))
		},
		"sqlite": func(t *testing.T) Store {
			s, err := OpenSQLiteInMemory()
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}
}

func TestStoreContract(t *testing.T) {
	for name, open := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			if _, ok, err := s.Get("missing"); err != nil || ok {
				t.Fatalf("Get(missing) = ok=%v err=%v; want not set", ok, err)
			}

			if err := s.Set("k", "v1"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Set("k", "v2"); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			v, ok, err := s.Get("k")
			if err != nil || !ok || v != "v2" {
				t.Fatalf("Get(k) = %q, %v, %v; want v2", v, ok, err)
			}

			if err := s.Clear("k"); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if err := s.Clear("k"); err != nil {
				t.Fatalf("Clear missing key: %v", err)
			}
			if _, ok, _ := s.Get("k"); ok {
				t.Fatal("expected key to be cleared")
			}
		})
	}
}

func TestCurrentFile(t *testing.T) {
	cf := NewCurrentFile(NewMemoryStore())

	if _, ok, err := cf.Get(); ok || err != nil {
		t.Fatalf("expected no current file, got ok=%v err=%v", ok, err)
	}

	if err := cf.Set("/data/friends.xml"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	path, ok, err := cf.Get()
	if err != nil || !ok || path != "/data/friends.xml" {
		t.Fatalf("Get = %q, %v, %v", path, ok, err)
	}

	if err := cf.Set(""); err != nil {
		t.Fatalf("Set empty: %v", err)
	}
	if _, ok, _ := cf.Get(); ok {
		t.Fatal("setting an empty path should clear the current file")
	}
}

func TestTOMLStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")

	if err := NewCurrentFile(NewTOMLStore(path)).Set("/data/a.xml"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := NewCurrentFile(NewTOMLStore(path)).Get()
	if err != nil || !ok || got != "/data/a.xml" {
		t.Fatalf("after reopen Get = %q, %v, %v", got, ok, err)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Set(KeyFilePath, "/data/b.xml"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, ok, err := s.Get(KeyFilePath)
	if err != nil || !ok || got != "/data/b.xml" {
		t.Fatalf("after reopen Get = %q, %v, %v", got, ok, err)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.toml")

	s, closer, err := Open(config.BackendTOML, statePath)
	if err != nil {
		t.Fatalf("Open toml: %v", err)
	}
	if _, ok := s.(*TOMLStore); !ok {
		t.Fatalf("expected *TOMLStore, got %T", s)
	}
	_ = closer.Close()

	s, closer, err = Open(config.BackendSQLite, statePath)
	if err != nil {
		t.Fatalf("Open sqlite: %v", err)
	}
	if _, ok := s.(*SQLiteStore); !ok {
		t.Fatalf("expected *SQLiteStore, got %T", s)
	}
	_ = closer.Close()

	if _, _, err := Open("registry", statePath); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
