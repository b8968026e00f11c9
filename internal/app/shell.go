// Package app holds the address book shell: the single owner of the in-memory
// person list and of the current-file setting. Every front end goes through it.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/makery/addressapp/internal/model"
	"github.com/makery/addressapp/internal/prefs"
	"github.com/makery/addressapp/internal/stats"
	"github.com/makery/addressapp/internal/storage"
)

var (
	// ErrNoCurrentFile is returned by Save when no file is associated yet;
	// the caller has to ask for a destination and use SaveAs.
	ErrNoCurrentFile = errors.New("no current file")
	// ErrIndexOutOfRange reports a person index outside the list.
	ErrIndexOutOfRange = errors.New("person index out of range")
	// ErrNotInList reports a person that is not an entry of this shell's list.
	ErrNotInList = errors.New("person is not in the address book")
	// ErrNotRestored is returned by Save after the current file failed to
	// load: the list in memory is not that file's content.
	ErrNotRestored = errors.New("current file was not loaded")
)

// Persistence loads and saves person lists.
type Persistence interface {
	Load(path string) ([]*model.Person, error)
	Save(path string, persons []*model.Person) error
}

// Editor runs an edit workflow on a snapshot of a person. It returns the edited
// snapshot and true when the user accepted, or false when the edit was cancelled.
type Editor interface {
	Edit(snapshot model.Person) (model.Person, bool, error)
}

// EditorFunc adapts a function to Editor.
type EditorFunc func(model.Person) (model.Person, bool, error)

// Edit implements Editor.
func (f EditorFunc) Edit(p model.Person) (model.Person, bool, error) { return f(p) }

// Options configure a Shell.
type Options struct {
	// Prefs stores the current-file setting. Required.
	Prefs prefs.Store
	// Persistence defaults to storage.XML.
	Persistence Persistence
	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger
	// Empty starts with no entries instead of the sample data.
	Empty bool
}

// Shell owns the person list and the current-file setting.
type Shell struct {
	mu          sync.Mutex
	persons     []*model.Person
	currentFile *prefs.CurrentFile
	persistence Persistence
	log         zerolog.Logger
	dirty       bool
	// notRestored is set while the remembered file could not be loaded.
	notRestored bool
}

// New returns a shell seeded with model.SampleData unless opts.Empty is set.
func New(opts Options) *Shell {
	s := &Shell{
		currentFile: prefs.NewCurrentFile(opts.Prefs),
		persistence: opts.Persistence,
		log:         zerolog.Nop(),
	}
	if s.persistence == nil {
		s.persistence = storage.XML{}
	}
	if opts.Logger != nil {
		s.log = opts.Logger.With().Str("component", "shell").Logger()
	}
	if !opts.Empty {
		s.persons = model.SampleData()
	}
	return s
}

// Restore reopens the current file, if one is remembered. When that fails the
// list keeps its previous content and the error is returned for reporting.
func (s *Shell) Restore() error {
	path, ok, err := s.currentFile.Get()
	if err != nil {
		return fmt.Errorf("read current file setting: %w", err)
	}
	if !ok {
		return nil
	}
	if err := s.Open(path); err != nil {
		s.mu.Lock()
		s.notRestored = true
		s.mu.Unlock()
		return err
	}
	return nil
}

// Restored reports whether the list matches the current file. It is false
// only after Restore failed and until the next new, open or save-as.
func (s *Shell) Restored() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.notRestored
}

// NewCollection empties the list and forgets the current file.
func (s *Shell) NewCollection() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persons = nil
	s.dirty = false
	s.notRestored = false
	if err := s.currentFile.Clear(); err != nil {
		return fmt.Errorf("clear current file setting: %w", err)
	}
	s.log.Info().Msg("started new address book")
	return nil
}

// Open replaces the list with the content of path and makes its absolute form
// the current file. On failure nothing changes and a *storage.LoadError is
// returned.
func (s *Shell) Open(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := absPath(path)
	if err != nil {
		return &storage.LoadError{Path: path, Err: err}
	}
	persons, err := s.persistence.Load(path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("load failed")
		return err
	}
	if err := s.currentFile.Set(path); err != nil {
		return fmt.Errorf("remember current file: %w", err)
	}

	s.persons = persons
	s.dirty = false
	s.notRestored = false
	s.log.Info().Str("path", path).Int("persons", len(persons)).Msg("opened address book")
	return nil
}

// Save writes the list to the current file. It returns ErrNoCurrentFile when
// there is none and ErrNotRestored when the current file failed to load.
func (s *Shell) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, ok, err := s.currentFile.Get()
	if err != nil {
		return fmt.Errorf("read current file setting: %w", err)
	}
	if !ok {
		return ErrNoCurrentFile
	}
	if s.notRestored {
		return fmt.Errorf("%w: refusing to overwrite %s", ErrNotRestored, path)
	}
	return s.saveLocked(path)
}

// SaveAs writes the list to the absolute form of path with the canonical
// extension ensured and makes it the current file. It returns the path
// actually written.
func (s *Shell) SaveAs(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := absPath(storage.EnsureExtension(path))
	if err != nil {
		return "", &storage.SaveError{Path: path, Err: err}
	}
	if err := s.saveLocked(path); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Shell) saveLocked(path string) error {
	if err := s.persistence.Save(path, s.persons); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("save failed")
		return err
	}
	if err := s.currentFile.Set(path); err != nil {
		return fmt.Errorf("remember current file: %w", err)
	}
	s.dirty = false
	s.notRestored = false
	s.log.Info().Str("path", path).Int("persons", len(s.persons)).Msg("saved address book")
	return nil
}

// CurrentFilePath returns the current file, or false when none is associated.
func (s *Shell) CurrentFilePath() (string, bool, error) {
	return s.currentFile.Get()
}

// EditOne hands a snapshot of p to ed. When the edit is accepted the result is
// copied into p in one step; list membership and order never change.
func (s *Shell) EditOne(p *model.Person, ed Editor) (bool, error) {
	s.mu.Lock()
	if s.indexLocked(p) < 0 {
		s.mu.Unlock()
		return false, ErrNotInList
	}
	snapshot := p.Clone()
	s.mu.Unlock()

	// The editor may block on user input; the lock is not held meanwhile.
	edited, accepted, err := ed.Edit(snapshot)
	if err != nil || !accepted {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(p) < 0 {
		return false, ErrNotInList
	}
	p.Apply(edited)
	s.dirty = true
	s.log.Debug().Str("person", p.FullName()).Msg("edited person")
	return true, nil
}

// Add appends p to the list.
func (s *Shell) Add(p *model.Person) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persons = append(s.persons, p)
	s.dirty = true
}

// Delete removes the entry at index.
func (s *Shell) Delete(index int) (*model.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.persons) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index+1)
	}
	removed := s.persons[index]
	s.persons = append(s.persons[:index:index], s.persons[index+1:]...)
	s.dirty = true
	return removed, nil
}

// Persons returns the current entries in display order. The slice is a copy;
// its elements are the live entries.
func (s *Shell) Persons() []*model.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Person, len(s.persons))
	copy(out, s.persons)
	return out
}

// Len returns the number of entries.
func (s *Shell) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.persons)
}

// At returns the entry at index.
func (s *Shell) At(index int) (*model.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.persons) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index+1)
	}
	return s.persons[index], nil
}

// IndexOf returns the position of p in the list, or -1.
func (s *Shell) IndexOf(p *model.Person) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(p)
}

func (s *Shell) indexLocked(p *model.Person) int {
	for i, q := range s.persons {
		if q == p {
			return i
		}
	}
	return -1
}

// Statistics counts birthdays per month over the current entries.
func (s *Shell) Statistics() stats.BirthdayStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.BirthdaysByMonth(s.persons)
}

// Dirty reports whether the list changed since it was last opened or saved.
func (s *Shell) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// absPath anchors path to the working directory so the remembered file still
// resolves when a later run starts elsewhere.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}
	return abs, nil
}
