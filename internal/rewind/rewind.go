// Package rewind builds the year-in-review dataset: synthetic (or imported)
// commit activity, the static bug and incident records, and the statistics
// derived from them.
package rewind

import (
	"fmt"
	"time"
)

// CommitType classifies a commit. The set is closed.
type CommitType string

const (
	CommitFeature  CommitType = "feature"
	CommitFix      CommitType = "fix"
	CommitChore    CommitType = "chore"
	CommitHotfix   CommitType = "hotfix"
	CommitRefactor CommitType = "refactor"
)

// CommitTypes lists every commit type in declaration order.
var CommitTypes = []CommitType{CommitFeature, CommitFix, CommitChore, CommitHotfix, CommitRefactor}

// ParseCommitType validates a commit type name.
func ParseCommitType(s string) (CommitType, error) {
	for _, t := range CommitTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown commit type %q", s)
}

// Commit is a single commit record. Immutable once created.
type Commit struct {
	ID           string     `json:"id"`
	Date         time.Time  `json:"date"`
	Message      string     `json:"message"`
	Type         CommitType `json:"type"`
	LinesAdded   int        `json:"linesAdded"`
	LinesRemoved int        `json:"linesRemoved"`
	Hour         int        `json:"hour"`
}

// Severity ranks a bug.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Bug is a fixed bug record.
type Bug struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Severity  Severity `json:"severity"`
	TimeToFix int      `json:"timeToFix"` // minutes
	FixedDate string   `json:"fixedDate"` // YYYY-MM-DD
	Emoji     string   `json:"emoji"`
}

// Incident describes the year's production incident.
type Incident struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Impact         string    `json:"impact"`
	ResolutionTime int       `json:"resolutionTime"` // minutes
	Timestamp      time.Time `json:"timestamp"`
}

// Stats is the aggregate derived from a commit sequence.
type Stats struct {
	TotalCommits       int        `json:"totalCommits"`
	TotalBugsFixed     int        `json:"totalBugsFixed"`
	LateNightCommits   int        `json:"lateNightCommits"`
	WeekendCommits     int        `json:"weekendCommits"`
	FavoriteCommitType CommitType `json:"favoriteCommitType"`
	CoffeeConsumed     int        `json:"coffeeConsumed"` // cups
	LinesOfCode        int        `json:"linesOfCode"`
	ProductionHotfixes int        `json:"productionHotfixes"`
}

// Dataset bundles everything one session presents. It is built once by
// NewDataset and treated as read-only afterwards.
type Dataset struct {
	Year     int      `json:"year"`
	Seed     int64    `json:"seed"`
	Source   string   `json:"source"`
	Commits  []Commit `json:"commits"`
	Bugs     []Bug    `json:"bugs"`
	Incident Incident `json:"productionIncident"`
	Stats    Stats    `json:"stats"`
}
