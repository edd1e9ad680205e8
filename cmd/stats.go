package cmd

import (
	"io"

	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/chris-regnier/devrewind/internal/ui"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the year's statistics",
	Example: `  devrewind stats
  devrewind stats --source git --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := sessionDataset(cmd.Context())
		if err != nil {
			return err
		}
		return statsRun(cmd.OutOrStdout(), ds, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func statsRun(w io.Writer, ds rewind.Dataset, asJSON bool) error {
	if asJSON {
		return ui.FormatJSON(w, ds.Stats)
	}
	ui.FormatStats(w, ds.Year, ds.Stats)
	return nil
}
