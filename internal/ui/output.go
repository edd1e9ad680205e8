package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/chris-regnier/devrewind/internal/storage"
	"github.com/dustin/go-humanize"
)

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatStats writes the derived statistics as an aligned plain-text table.
func FormatStats(w io.Writer, year int, s rewind.Stats) {
	fmt.Fprintf(w, "Developer Rewind %d\n", year)
	for _, c := range statCards(s) {
		fmt.Fprintf(w, "  %-20s %10s\n", c.Label, c.Value)
	}
	fmt.Fprintf(w, "  %-20s %10s\n", "Lines of Code", humanize.Comma(int64(s.LinesOfCode)))
	fmt.Fprintf(w, "  %-20s %10s\n", "Favorite Type", s.FavoriteCommitType)
}

// FormatArchiveSaved formats a save confirmation message.
func FormatArchiveSaved(w io.Writer, a storage.Archive) {
	fmt.Fprintf(w, "Saved rewind %s (%d, %d commits)\n", a.ID, a.Dataset.Year, a.Dataset.Stats.TotalCommits)
}

// FormatArchiveDeleted formats a deletion confirmation message.
func FormatArchiveDeleted(w io.Writer, id string) {
	fmt.Fprintf(w, "Deleted rewind %s.\n", id)
}

// FormatArchiveList formats saved rewinds, newest first, one per line.
func FormatArchiveList(w io.Writer, archives []storage.Archive) {
	if len(archives) == 0 {
		fmt.Fprintln(w, "No saved rewinds found.")
		return
	}
	for _, a := range archives {
		label := a.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(w, "%s  %d  %-4s  %6s commits  %-12s  %s\n",
			a.ID,
			a.Dataset.Year,
			a.Dataset.Source,
			humanize.Comma(int64(a.Dataset.Stats.TotalCommits)),
			humanize.Time(a.CreatedAt),
			label,
		)
	}
}

// ArchiveSummary is a JSON representation for list output.
type ArchiveSummary struct {
	ID           string    `json:"id"`
	Label        string    `json:"label,omitempty"`
	Year         int       `json:"year"`
	Source       string    `json:"source"`
	Seed         int64     `json:"seed"`
	TotalCommits int       `json:"total_commits"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToSummaries converts archives to summary format for JSON list output.
func ToSummaries(archives []storage.Archive) []ArchiveSummary {
	summaries := make([]ArchiveSummary, len(archives))
	for i, a := range archives {
		summaries[i] = ArchiveSummary{
			ID:           a.ID,
			Label:        a.Label,
			Year:         a.Dataset.Year,
			Source:       a.Dataset.Source,
			Seed:         a.Dataset.Seed,
			TotalCommits: a.Dataset.Stats.TotalCommits,
			CreatedAt:    a.CreatedAt,
		}
	}
	return summaries
}

// DeleteResult is a JSON representation for delete output.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
