package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/makery/addressapp/internal/stats"
	"github.com/makery/addressapp/internal/ui"
)

const statsBarWidth = 30

// MonthStat is one row of the birthday statistics.
type MonthStat struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// StatsResult is the JSON shape of 'addr stats'.
type StatsResult struct {
	Months  []MonthStat `json:"months"`
	Unknown int         `json:"unknown"`
	Total   int         `json:"total"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show birthday statistics",
	Long: `Shows how many persons have their birthday in each month.

Examples:
  addr stats
  addr stats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := shell.Statistics()

		if isJSONOutput() {
			result := StatsResult{Unknown: st.Unknown, Total: st.Total()}
			for _, mc := range st.Months() {
				result.Months = append(result.Months, MonthStat{Month: mc.Month.String(), Count: mc.Count})
			}
			outputSuccess(result, &Meta{Count: shell.Len()})
			return nil
		}

		display := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(statsMarkdown(st), display.TermWidth)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		fmt.Print(rendered)
		return nil
	},
}

// statsMarkdown renders st as a markdown table with proportional bars.
func statsMarkdown(st stats.BirthdayStats) string {
	var b strings.Builder
	b.WriteString("# Birthday statistics\n\n")
	b.WriteString("| Month | Persons | |\n")
	b.WriteString("|-------|--------:|-|\n")

	peak := st.Max()
	for _, mc := range st.Months() {
		bar := ""
		if peak > 0 && mc.Count > 0 {
			bar = strings.Repeat("█", max(1, mc.Count*statsBarWidth/peak))
		}
		fmt.Fprintf(&b, "| %s | %d | %s |\n", mc.Month, mc.Count, bar)
	}

	if st.Unknown > 0 {
		fmt.Fprintf(&b, "\n_%s without a birthday._\n", ui.Count(st.Unknown, "person", "persons"))
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
