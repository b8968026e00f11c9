package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/makery/addressapp/internal/shellquote"
	"github.com/makery/addressapp/internal/ui"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Work on the address book interactively",
	Long: `Starts an interactive session on one address book.

Every addr command can be typed without the leading 'addr'. Changes stay in
memory until 'save' or 'save-as'; 'exit' asks before discarding them.

Example:
  $ addr session
  addr> add --first Ada --last Lovelace --street "St James's Square 12" --postal-code 1815 --city London --birthday 10.12.1815
  addr*> save-as ~/addresses
  addr (addresses.xml)> exit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSONOutput() {
			return handleErrorMsg(ErrInvalidInput, "session does not support --json", "Run single commands with --json instead")
		}
		inSession = true
		defer func() { inSession = false }()

		fmt.Println(ui.Header("addr session") + "  " + ui.Hint("type 'help' for commands, 'exit' to quit"))
		runSession(stdinReader)
		return nil
	},
}

// runSession reads commands from in until exit or end of input.
func runSession(in *bufio.Reader) {
	for {
		fmt.Print(sessionPrompt())
		line, err := in.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			fmt.Println()
			confirmDiscard()
			return
		}

		words, splitErr := shellquote.Split(line)
		if splitErr != nil {
			fmt.Fprintln(os.Stderr, ui.Error(splitErr.Error()))
			continue
		}
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "exit", "quit":
			if confirmDiscard() {
				return
			}
			continue
		case "session":
			fmt.Println(ui.Hint("Already in a session."))
			continue
		}

		runSessionCommand(words)
	}
}

// runSessionCommand executes one command line against the running shell.
func runSessionCommand(args []string) {
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
}

// confirmDiscard reports whether the session may end. Unsaved changes are
// confirmed in a terminal and dropped with a warning otherwise.
func confirmDiscard() bool {
	if !shell.Dirty() {
		return true
	}
	if shouldPromptForConfirm() {
		return promptForConfirm("Discard unsaved changes?")
	}
	fmt.Println(ui.Warning("Unsaved changes discarded."))
	return true
}

func sessionPrompt() string {
	name := "addr"
	if path, ok, _ := shell.CurrentFilePath(); ok {
		name += " (" + filepath.Base(path) + ")"
	}
	if shell.Dirty() {
		name += "*"
	}
	return ui.Accent.Render(name) + "> "
}

// resetFlags restores every changed flag of cmd and its subcommands to its
// default, so values do not leak from one session line into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
