package prefs

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/makery/addressapp/internal/config"
)

// Open returns the store selected by backend. statePath is the resolved
// state.toml location; the SQLite backend keeps prefs.db next to it.
// The returned closer must be called when the store is no longer used.
func Open(backend, statePath string) (Store, io.Closer, error) {
	switch backend {
	case "", config.BackendTOML:
		return NewTOMLStore(statePath), nopCloser{}, nil
	case config.BackendSQLite:
		s, err := OpenSQLite(SQLitePath(statePath))
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown preference backend %q", backend)
	}
}

// SQLitePath returns the database path used alongside statePath.
func SQLitePath(statePath string) string {
	return filepath.Join(filepath.Dir(statePath), "prefs.db")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
