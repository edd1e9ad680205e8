package cmd

import (
	"fmt"
	"io"

	"github.com/chris-regnier/devrewind/internal/storage"
	"github.com/chris-regnier/devrewind/internal/ui"
	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyOffset int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved rewinds",
	Long: `List saved rewinds, newest first.

The global --year and --source flags filter the list when given explicitly.`,
	Example: `  devrewind history
  devrewind history --year 2025 --limit 5
  devrewind history --source git --offset 10 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return historyRun(cmd.OutOrStdout(), historyFilter(cmd), jsonOutput)
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum number of rewinds to list")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "skip this many rewinds")
	rootCmd.AddCommand(historyCmd)
}

// historyFilter builds list options from the command's flags. Year and
// source come from the config only when set on the command line, since
// both always carry a default.
func historyFilter(cmd *cobra.Command) storage.ListOptions {
	opts := storage.ListOptions{Limit: historyLimit, Offset: historyOffset}
	flags := cmd.Flags()
	if flags.Changed("year") {
		opts.Year = appConfig.Year
	}
	if flags.Changed("source") {
		opts.Source = appConfig.Source
	}
	return opts
}

func historyRun(w io.Writer, opts storage.ListOptions, asJSON bool) error {
	if opts.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative", storage.ErrValidation)
	}
	archives, err := store.List(opts)
	if err != nil {
		return fmt.Errorf("listing rewinds: %w", err)
	}
	if asJSON {
		return ui.FormatJSON(w, ui.ToSummaries(archives))
	}
	ui.FormatArchiveList(w, archives)
	return nil
}
