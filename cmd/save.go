package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/chris-regnier/devrewind/internal/logger"
	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/chris-regnier/devrewind/internal/storage"
	"github.com/chris-regnier/devrewind/internal/ui"
	"github.com/spf13/cobra"
)

var saveLabel string

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save this session's rewind",
	Long:  "Archive the session's dataset so it can be replayed later with exactly the same commits and stats.",
	Example: `  devrewind save --seed 42 --label "the good timeline"
  devrewind save --source git --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := sessionDataset(cmd.Context())
		if err != nil {
			return err
		}
		_, err = saveRun(cmd.OutOrStdout(), ds, saveLabel, jsonOutput)
		return err
	},
}

func init() {
	saveCmd.Flags().StringVar(&saveLabel, "label", "", "label to remember this rewind by")
	rootCmd.AddCommand(saveCmd)
}

func saveRun(w io.Writer, ds rewind.Dataset, label string, asJSON bool) (storage.Archive, error) {
	id, err := storage.NewID()
	if err != nil {
		return storage.Archive{}, fmt.Errorf("generating ID: %w", err)
	}

	a := storage.Archive{
		ID:        id,
		Label:     label,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Dataset:   ds,
	}
	if err := store.Save(a); err != nil {
		return storage.Archive{}, fmt.Errorf("saving rewind: %w", err)
	}
	logger.Info("rewind saved", "id", a.ID, "year", ds.Year, "source", ds.Source)

	if asJSON {
		return a, ui.FormatJSON(w, ui.ToSummaries([]storage.Archive{a})[0])
	}
	ui.FormatArchiveSaved(w, a)
	return a, nil
}
