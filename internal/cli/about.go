package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/makery/addressapp/internal/buildinfo"
	"github.com/makery/addressapp/internal/ui"
)

const aboutMarkdown = `# AddressApp

A small address book for persons and their birthdays.

- Author: Marco Jakob
- Website: http://code.makery.ch
`

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show information about addr",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"name":    "AddressApp",
				"author":  "Marco Jakob",
				"website": "http://code.makery.ch",
				"version": buildinfo.Current().Version,
			}, nil)
			return nil
		}

		rendered, err := ui.RenderMarkdown(aboutMarkdown, ui.NewDisplayContext().TermWidth)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
