package cmd

import (
	"fmt"
	"io"

	"github.com/chris-regnier/devrewind/internal/storage"
	"github.com/chris-regnier/devrewind/internal/ui"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Play a saved rewind",
	Long:  "Play a saved rewind exactly as it was archived. Without a terminal the report is printed instead.",
	Example: `  devrewind replay a3kf9x2m
  devrewind replay a3kf9x2m --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return replayRun(cmd.OutOrStdout(), args[0], jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func loadArchive(id string) (storage.Archive, error) {
	if err := storage.ValidateID(id); err != nil {
		return storage.Archive{}, err
	}
	a, err := store.Get(id)
	if err != nil {
		return storage.Archive{}, fmt.Errorf("loading rewind %s: %w", id, err)
	}
	return a, nil
}

func replayRun(w io.Writer, id string, asJSON bool) error {
	a, err := loadArchive(id)
	if err != nil {
		return err
	}
	if asJSON {
		return ui.FormatJSON(w, a.Dataset)
	}
	return play(w, a.Dataset)
}
