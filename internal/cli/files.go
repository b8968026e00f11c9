package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/makery/addressapp/internal/app"
	"github.com/makery/addressapp/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start an empty address book",
	Long: `Clears the address book and forgets the current file.

Nothing is asked and nothing can be undone; the previous file on disk is left
as it is.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := shell.NewCollection(); err != nil {
			return handleError(ErrPrefsError, err, "")
		}
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"persons": 0}, nil)
			return nil
		}
		fmt.Println(ui.Success("Started a new address book"))
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Open an address file",
	Long: `Replaces the address book with the persons stored in <file> and makes it
the current file. If the file cannot be loaded nothing changes.

Examples:
  addr open ~/addresses.xml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := shell.Open(args[0]); err != nil {
			return handleError(errorCode(err), err, "Check that the file exists and is an address file")
		}
		path, _, _ := shell.CurrentFilePath()
		n := shell.Len()
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"file": path, "persons": n}, &Meta{Count: n, File: path})
			return nil
		}
		fmt.Println(ui.Successf("Opened %s %s", ui.FilePath(path), ui.Hint("("+ui.Count(n, "person", "persons")+")")))
		return nil
	},
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save to the current file",
	Long: `Writes the address book to the current file.

Without a current file, asks for a destination when run in a terminal and
otherwise fails with NO_CURRENT_FILE; use 'addr save-as' in scripts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := shell.Save()
		if errors.Is(err, app.ErrNoCurrentFile) {
			dest, ok := promptForLine("Save as:")
			if !ok {
				return handleError(ErrNoCurrentFile, err, "Run 'addr save-as <file>' to choose a file")
			}
			return saveAs(dest)
		}
		if errors.Is(err, app.ErrNotRestored) {
			return handleError(ErrNotRestored, err, "Run 'addr open <file>' to retry, or 'addr save-as <file>' to keep this list")
		}
		if err != nil {
			return handleError(errorCode(err), err, "")
		}

		path, _, _ := shell.CurrentFilePath()
		return reportSaved(path)
	},
}

var saveAsCmd = &cobra.Command{
	Use:   "save-as <file>",
	Short: "Save to a new file and make it current",
	Long: `Writes the address book to <file> and makes it the current file.
The .xml extension is added when missing.

Examples:
  addr save-as ~/addresses      # writes ~/addresses.xml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveAs(args[0])
	},
}

func saveAs(path string) error {
	written, err := shell.SaveAs(path)
	if err != nil {
		return handleError(errorCode(err), err, "")
	}
	return reportSaved(written)
}

func reportSaved(path string) error {
	n := shell.Len()
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{"file": path, "persons": n}, &Meta{Count: n, File: path})
		return nil
	}
	fmt.Println(ui.Successf("Saved %s to %s", ui.Count(n, "person", "persons"), ui.FilePath(path)))
	return nil
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the current file",
	Long: `Prints the path of the current address file.

Useful for shell integration:
  $EDITOR $(addr path)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, ok, err := shell.CurrentFilePath()
		if err != nil {
			return handleError(ErrPrefsError, err, "")
		}
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"file": path, "set": ok}, nil)
			return nil
		}
		if !ok {
			return handleErrorMsg(ErrNoCurrentFile, "no current file", "Run 'addr open <file>' or 'addr save-as <file>'")
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(saveAsCmd)
	rootCmd.AddCommand(pathCmd)
}
