package editor

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/makery/addressapp/internal/model"
	"github.com/makery/addressapp/internal/shellquote"
)

// ErrNoEditor is returned when no editor command is configured.
var ErrNoEditor = errors.New("no editor configured")

const formHeader = `# Edit the person below, then save and quit.
# Leave the file unchanged or empty it to cancel.
# Birthday format: dd.MM.yyyy
`

// TextEditor writes the snapshot as a YAML form to a temporary file, opens it
// in an external editor and reads the result back.
type TextEditor struct {
	// Command is the editor to launch. Commands containing spaces run via sh -c.
	Command string
	// Dir holds the temporary file. Empty means os.TempDir.
	Dir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Edit implements app.Editor. The edit is cancelled when the file comes back
// unchanged or without content.
func (e TextEditor) Edit(snapshot model.Person) (model.Person, bool, error) {
	if strings.TrimSpace(e.Command) == "" {
		return model.Person{}, false, ErrNoEditor
	}

	body, err := yaml.Marshal(FormOf(snapshot))
	if err != nil {
		return model.Person{}, false, fmt.Errorf("encode form: %w", err)
	}
	original := append([]byte(formHeader), body...)

	f, err := os.CreateTemp(e.Dir, "person-*.yaml")
	if err != nil {
		return model.Person{}, false, fmt.Errorf("create form file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(original); err != nil {
		f.Close()
		return model.Person{}, false, fmt.Errorf("write form file: %w", err)
	}
	if err := f.Close(); err != nil {
		return model.Person{}, false, fmt.Errorf("write form file: %w", err)
	}

	if err := e.command(path).Run(); err != nil {
		return model.Person{}, false, fmt.Errorf("run editor %q: %w", e.Command, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return model.Person{}, false, fmt.Errorf("read form file: %w", err)
	}
	if bytes.Equal(edited, original) || onlyComments(edited) {
		return model.Person{}, false, nil
	}

	var form Form
	if err := yaml.Unmarshal(edited, &form); err != nil {
		return model.Person{}, false, fmt.Errorf("parse form: %w", err)
	}
	p, err := Validate(form)
	if err != nil {
		return model.Person{}, false, err
	}
	return p, true, nil
}

func (e TextEditor) command(path string) *exec.Cmd {
	var cmd *exec.Cmd
	if strings.Contains(e.Command, " ") {
		cmd = exec.Command("sh", "-c", e.Command+" "+shellquote.Quote(path))
	} else {
		cmd = exec.Command(e.Command, path)
	}
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	return cmd
}

func onlyComments(data []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			return false
		}
	}
	return true
}
