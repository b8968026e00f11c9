package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/makery/addressapp/internal/atomicfile"
	"github.com/makery/addressapp/internal/export"
	"github.com/makery/addressapp/internal/ui"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the address book",
	Long: `Writes the address book as markdown, html, yaml or json.

Exports are for reading and for other tools; only XML address files can be
opened again.

Examples:
  addr export --format markdown
  addr export --format html --output addresses.html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		persons := shell.Persons()

		if exportOutput == "" || exportOutput == "-" {
			if isJSONOutput() {
				return handleErrorMsg(ErrMissingArgument, "--output is required with --json", "")
			}
			return export.Write(os.Stdout, format, persons)
		}

		err = atomicfile.Write(exportOutput, 0, func(w io.Writer) error {
			return export.Write(w, format, persons)
		})
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"file": exportOutput, "format": format}, &Meta{Count: len(persons)})
			return nil
		}
		fmt.Println(ui.Successf("Exported %s to %s", ui.Count(len(persons), "person", "persons"), ui.FilePath(exportOutput)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", string(export.FormatMarkdown), "Format: markdown, html, yaml, json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
