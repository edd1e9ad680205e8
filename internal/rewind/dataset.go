package rewind

import (
	"math/rand"
	"time"
)

// Sources a dataset's commits can come from.
const (
	SourceMock = "mock"
	SourceGit  = "git"
)

// Options controls dataset construction.
type Options struct {
	Year int
	// Seed feeds the commit generator. Zero picks a time-based seed, which
	// is recorded on the dataset so the session can be regenerated.
	Seed int64
	// Commits, when non-nil, replaces generation (e.g. commits read from git).
	Commits []Commit
	Source  string
}

// NewDataset builds the dataset for one session.
func NewDataset(opts Options) Dataset {
	year := opts.Year
	if year <= 0 {
		year = DefaultYear
	}

	ds := Dataset{
		Year:     year,
		Bugs:     Bugs(year),
		Incident: ProductionIncident(year),
	}

	if opts.Commits != nil {
		ds.Source = opts.Source
		if ds.Source == "" {
			ds.Source = SourceGit
		}
		ds.Commits = make([]Commit, len(opts.Commits))
		copy(ds.Commits, opts.Commits)
		SortCommits(ds.Commits)
	} else {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		ds.Seed = seed
		ds.Source = SourceMock
		ds.Commits = NewGenerator(rand.NewSource(seed), year).Commits()
	}

	ds.Stats = ComputeStats(ds.Commits, len(ds.Bugs))
	return ds
}

// CommitsOfType returns the commits with the given type, in order.
func (d Dataset) CommitsOfType(t CommitType) []Commit {
	var out []Commit
	for _, c := range d.Commits {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// CommitsInMonth returns the commits dated in the given month.
func (d Dataset) CommitsInMonth(m time.Month) []Commit {
	var out []Commit
	for _, c := range d.Commits {
		if c.Date.UTC().Month() == m {
			out = append(out, c)
		}
	}
	return out
}

// MonthlyCounts returns commit counts per month, January first.
func (d Dataset) MonthlyCounts() [12]int {
	var counts [12]int
	for _, c := range d.Commits {
		counts[c.Date.UTC().Month()-1]++
	}
	return counts
}
