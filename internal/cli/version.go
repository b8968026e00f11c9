package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/makery/addressapp/internal/buildinfo"
	"github.com/makery/addressapp/internal/ui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildinfo.Current()

		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}

		fmt.Printf("%s %s\n", ui.Header("addr"), info.Version)
		tbl := ui.NewTable(2)
		tbl.AddRow(ui.Muted.Render("module"), info.ModulePath)
		if info.Commit != "" {
			tbl.AddRow(ui.Muted.Render("commit"), info.Commit)
		}
		if info.CommitTime != "" {
			tbl.AddRow(ui.Muted.Render("commit time"), info.CommitTime)
		}
		tbl.AddRow(ui.Muted.Render("go"), info.GoVersion)
		tbl.AddRow(ui.Muted.Render("platform"), info.GOOS+"/"+info.GOARCH)
		tbl.AddRow(ui.Muted.Render("modified"), fmt.Sprintf("%t", info.Modified))
		fmt.Print(tbl.String())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
