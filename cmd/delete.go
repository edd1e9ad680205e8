package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/chris-regnier/devrewind/internal/logger"
	"github.com/chris-regnier/devrewind/internal/ui"
	"github.com/spf13/cobra"
)

var forceDelete bool

// confirmDelete asks before deleting; replaced in tests.
var confirmDelete = func(prompt string) (bool, error) {
	return ui.Confirm(prompt, ui.ResolveTheme(appConfig.Theme))
}

var errNeedsForce = errors.New("refusing to delete without confirmation; pass --force")

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved rewind",
	Long:  "Permanently delete a saved rewind. Requires confirmation unless --force is used.",
	Example: `  devrewind delete a3kf9x2m
  devrewind delete a3kf9x2m --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !forceDelete && !isTerminal(cmd.InOrStdin()) {
			return errNeedsForce
		}
		return deleteRun(cmd.OutOrStdout(), args[0], forceDelete, jsonOutput)
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func deleteRun(w io.Writer, id string, force, asJSON bool) error {
	a, err := loadArchive(id)
	if err != nil {
		return err
	}

	if !force {
		fmt.Fprintf(w, "Rewind: %s (%d, %s, %d commits)\n", a.ID, a.Dataset.Year, a.Dataset.Source, a.Dataset.Stats.TotalCommits)
		if a.Label != "" {
			fmt.Fprintf(w, "Label: %s\n", a.Label)
		}
		fmt.Fprintln(w)

		confirmed, err := confirmDelete("Delete this rewind? This cannot be undone.")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := store.Delete(id); err != nil {
		return fmt.Errorf("deleting rewind %s: %w", id, err)
	}
	logger.Info("rewind deleted", "id", id)

	if asJSON {
		return ui.FormatJSON(w, ui.DeleteResult{ID: id, Deleted: true})
	}
	ui.FormatArchiveDeleted(w, id)
	return nil
}
