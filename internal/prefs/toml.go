package prefs

import (
	"github.com/makery/addressapp/internal/config"
)

// TOMLStore keeps preferences in the [prefs] table of a state.toml file.
// The file is re-read on every call so concurrent CLI invocations observe
// each other's writes.
type TOMLStore struct {
	path string
}

var _ Store = (*TOMLStore)(nil)

// NewTOMLStore returns a store backed by the state file at path.
func NewTOMLStore(path string) *TOMLStore {
	return &TOMLStore{path: path}
}

// Path returns the backing state file.
func (s *TOMLStore) Path() string { return s.path }

func (s *TOMLStore) Get(key string) (string, bool, error) {
	state, err := config.LoadState(s.path)
	if err != nil {
		return "", false, err
	}
	v, ok := state.Prefs[key]
	return v, ok, nil
}

func (s *TOMLStore) Set(key, value string) error {
	state, err := config.LoadState(s.path)
	if err != nil {
		return err
	}
	if v, ok := state.Prefs[key]; ok && v == value {
		return nil
	}
	state.Prefs[key] = value
	return config.SaveState(s.path, state)
}

func (s *TOMLStore) Clear(key string) error {
	state, err := config.LoadState(s.path)
	if err != nil {
		return err
	}
	if _, ok := state.Prefs[key]; !ok {
		return nil
	}
	delete(state.Prefs, key)
	return config.SaveState(s.path, state)
}
