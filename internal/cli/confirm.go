package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/makery/addressapp/internal/ui"
)

// stdinReader is shared by prompts and the session loop so buffered input is
// not lost between them.
var stdinReader = bufio.NewReader(os.Stdin)

func shouldPromptForConfirm() bool {
	if isJSONOutput() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

func promptForConfirm(message string) bool {
	if !shouldPromptForConfirm() {
		return false
	}
	if message == "" {
		message = "Apply changes?"
	}
	fmt.Printf("%s %s ", message, ui.Hint("[y/N]"))
	response, _ := stdinReader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// promptForLine asks for a line of input. It returns false when no terminal
// is attached or the input is empty.
func promptForLine(message string) (string, bool) {
	if !shouldPromptForConfirm() {
		return "", false
	}
	fmt.Printf("%s ", message)
	return readLine(stdinReader)
}

func readLine(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", false
	}
	line = strings.TrimSpace(line)
	return line, line != ""
}
