package rewind

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// DefaultYear is the year the rewind covers when none is configured.
const DefaultYear = 2025

const (
	minMonthlyCommits = 10
	maxMonthlyCommits = 25
	hotfixCount       = 3
	hotfixHour        = 23
)

// ordinaryTypes are drawn for regular commits. Hotfixes are only injected.
var ordinaryTypes = []CommitType{CommitFeature, CommitFix, CommitChore, CommitRefactor}

var commitMessages = map[CommitType][]string{
	CommitFeature: {
		"Add dark mode support",
		"Implement user authentication",
		"Add search functionality",
		"Create dashboard layout",
		"Add file upload feature",
		"Implement real-time notifications",
		"Add export to CSV functionality",
		"Create mobile responsive design",
	},
	CommitFix: {
		"Fix memory leak in sidebar",
		"Fix infinite loop in useEffect",
		"Fix CSS overflow issue",
		"Fix race condition in API call",
		"Fix timezone bug",
		"Fix mobile scroll",
		"Fix broken form validation",
		"Fix null pointer exception",
	},
	CommitChore: {
		"Update dependencies",
		"Clean up console logs",
		"Update README",
		"Refactor folder structure",
		"Update CI/CD pipeline",
		"Add ESLint rules",
		"Update TypeScript config",
	},
	CommitHotfix: {
		"HOTFIX: Critical auth bypass",
		"HOTFIX: Database connection pool leak",
		"HOTFIX: Payment processing error",
		"HOTFIX: Data corruption bug",
	},
	CommitRefactor: {
		"Refactor authentication logic",
		"Extract reusable components",
		"Improve error handling",
		"Optimize database queries",
		"Simplify state management",
	},
}

// Generator synthesizes a year of commit activity from an injected source
// of randomness. The same source state always yields the same commits.
type Generator struct {
	rng  *rand.Rand
	year int
}

// NewGenerator creates a generator for the given year. A year <= 0 falls
// back to DefaultYear.
func NewGenerator(src rand.Source, year int) *Generator {
	if year <= 0 {
		year = DefaultYear
	}
	return &Generator{rng: rand.New(src), year: year}
}

// NewSeededGenerator is a convenience for NewGenerator(rand.NewSource(seed), year).
func NewSeededGenerator(seed int64, year int) *Generator {
	return NewGenerator(rand.NewSource(seed), year)
}

// Year reports the year the generator covers.
func (g *Generator) Year() int { return g.year }

// intn returns a uniform integer in [lo, hi].
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// randomDate picks a day in [1,28] and an hour in [0,23] of the given month.
func (g *Generator) randomDate(month int) time.Time {
	day := g.intn(1, 28)
	hour := g.intn(0, 23)
	return time.Date(g.year, time.Month(month), day, hour, 0, 0, 0, time.UTC)
}

// Commits generates the full commit sequence: 12 months of ordinary commits
// followed by three late-night hotfixes, sorted by timestamp.
func (g *Generator) Commits() []Commit {
	commits := make([]Commit, 0, 12*maxMonthlyCommits+hotfixCount)

	for month := 1; month <= 12; month++ {
		count := g.intn(minMonthlyCommits, maxMonthlyCommits)
		for i := 0; i < count; i++ {
			typ := ordinaryTypes[g.rng.Intn(len(ordinaryTypes))]
			pool := commitMessages[typ]
			msg := pool[g.rng.Intn(len(pool))]
			date := g.randomDate(month)

			commits = append(commits, Commit{
				ID:           fmt.Sprintf("commit-%d-%d", month, i),
				Date:         date,
				Message:      msg,
				Type:         typ,
				LinesAdded:   g.intn(10, 509),
				LinesRemoved: g.intn(0, 199),
				Hour:         date.Hour(),
			})
		}
	}

	// Hotfixes always report hour 23 whatever their drawn date says.
	hotfixes := commitMessages[CommitHotfix]
	for i := 0; i < hotfixCount; i++ {
		month := g.intn(1, 12)
		commits = append(commits, Commit{
			ID:           fmt.Sprintf("hotfix-%d", i),
			Date:         g.randomDate(month),
			Message:      hotfixes[i],
			Type:         CommitHotfix,
			LinesAdded:   g.intn(20, 119),
			LinesRemoved: g.intn(0, 49),
			Hour:         hotfixHour,
		})
	}

	SortCommits(commits)
	return commits
}

// SortCommits orders commits ascending by timestamp. The sort is stable, so
// re-sorting an ordered sequence leaves it unchanged.
func SortCommits(commits []Commit) {
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Date.Before(commits[j].Date)
	})
}
