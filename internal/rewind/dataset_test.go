package rewind

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatasetSeeded(t *testing.T) {
	a := NewDataset(Options{Year: 2025, Seed: 11})
	b := NewDataset(Options{Year: 2025, Seed: 11})
	require.Equal(t, a, b)

	assert.Equal(t, SourceMock, a.Source)
	assert.Equal(t, int64(11), a.Seed)
	assert.Equal(t, len(a.Commits), a.Stats.TotalCommits)
	assert.Equal(t, 8, a.Stats.TotalBugsFixed)
	assert.Len(t, a.Bugs, 8)
}

func TestNewDatasetRecordsTimeSeed(t *testing.T) {
	ds := NewDataset(Options{})
	assert.NotZero(t, ds.Seed)
	assert.Equal(t, DefaultYear, ds.Year)
}

func TestNewDatasetWithSuppliedCommits(t *testing.T) {
	commits := []Commit{
		{ID: "b", Date: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC), Type: CommitFix, Hour: 10, LinesAdded: 3},
		{ID: "a", Date: time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC), Type: CommitFeature, Hour: 23, LinesAdded: 7},
	}
	ds := NewDataset(Options{Year: 2024, Commits: commits})

	assert.Equal(t, SourceGit, ds.Source)
	assert.Zero(t, ds.Seed)
	require.Len(t, ds.Commits, 2)
	assert.Equal(t, "a", ds.Commits[0].ID)
	assert.Equal(t, "b", commits[0].ID, "caller slice must not be reordered")
	assert.Equal(t, 10, ds.Stats.LinesOfCode)
	assert.Equal(t, "2024-02-15", ds.Bugs[0].FixedDate)
	assert.Equal(t, 2024, ds.Incident.Timestamp.Year())
}

func TestNewDatasetEmptySuppliedCommits(t *testing.T) {
	ds := NewDataset(Options{Commits: []Commit{}})
	assert.Equal(t, 0, ds.Stats.TotalCommits)
	assert.Equal(t, DefaultFavoriteType, ds.Stats.FavoriteCommitType)
}

func TestStaticDataDeterministic(t *testing.T) {
	assert.Equal(t, Bugs(2025), Bugs(2025))
	assert.Equal(t, "2025-09-08", Bugs(2025)[7].FixedDate)

	inc := ProductionIncident(2025)
	assert.Equal(t, 47, inc.ResolutionTime)
	assert.Equal(t, "2025-11-29T14:32:00Z", inc.Timestamp.Format(time.RFC3339))
}

func TestDatasetJSONFieldNames(t *testing.T) {
	ds := NewDataset(Options{Seed: 3})
	data, err := json.Marshal(ds)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"commits", "bugs", "productionIncident", "stats"} {
		assert.Contains(t, raw, key)
	}

	var stats map[string]any
	require.NoError(t, json.Unmarshal(raw["stats"], &stats))
	assert.Contains(t, stats, "favoriteCommitType")
	assert.Contains(t, stats, "coffeeConsumed")
}

func TestDatasetFilters(t *testing.T) {
	ds := NewDataset(Options{Seed: 8})

	assert.Len(t, ds.CommitsOfType(CommitHotfix), ds.Stats.ProductionHotfixes)

	total := 0
	for m, n := range ds.MonthlyCounts() {
		assert.Len(t, ds.CommitsInMonth(time.Month(m+1)), n)
		total += n
	}
	assert.Equal(t, ds.Stats.TotalCommits, total)
}
