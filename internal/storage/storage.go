// Package storage reads and writes address files.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/makery/addressapp/internal/atomicfile"
	"github.com/makery/addressapp/internal/model"
)

// Extension is the canonical address file extension.
const Extension = ".xml"

// LoadError reports a file that could not be turned into a person list.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load data from file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a person list that could not be written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("could not save data to file %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Load reads the address file at path.
func Load(path string) ([]*model.Person, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("file does not exist")}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	persons, err := Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return persons, nil
}

// Save writes persons to path, replacing any previous content only once the
// new document has been written completely.
func Save(path string, persons []*model.Person) error {
	err := atomicfile.Write(path, 0, func(w io.Writer) error {
		return Encode(w, persons)
	})
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}

// EnsureExtension appends Extension to path unless it already ends with it.
func EnsureExtension(path string) string {
	if strings.HasSuffix(path, Extension) {
		return path
	}
	return path + Extension
}

// XML is the file-backed persistence used by the application shell.
type XML struct{}

// Load implements app.Persistence.
func (XML) Load(path string) ([]*model.Person, error) { return Load(path) }

// Save implements app.Persistence.
func (XML) Save(path string, persons []*model.Person) error { return Save(path, persons) }
