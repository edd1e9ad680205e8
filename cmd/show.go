package cmd

import (
	"io"

	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/chris-regnier/devrewind/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the rewind as a report",
	Long:  "Print every section of the rewind as a rendered markdown report, or the full dataset with --json.",
	Example: `  devrewind show
  devrewind show --seed 42 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := sessionDataset(cmd.Context())
		if err != nil {
			return err
		}
		return showRun(cmd.OutOrStdout(), ds, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showRun(w io.Writer, ds rewind.Dataset, asJSON bool) error {
	if asJSON {
		return ui.FormatJSON(w, ds)
	}
	return writeReport(w, ds)
}
