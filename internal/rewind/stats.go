package rewind

import "time"

// DefaultFavoriteType is reported as the favorite when there are no commits.
const DefaultFavoriteType = CommitFeature

// IsLateNight reports whether an hour falls in [22,23] or [0,5].
func IsLateNight(hour int) bool {
	return hour >= 22 || hour <= 5
}

// IsWeekend reports whether t falls on a Saturday or Sunday, using the
// calendar date of t in UTC.
func IsWeekend(t time.Time) bool {
	switch t.UTC().Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// CoffeeCups is the caffeine heuristic: floor(lateNight*2.5) + weekend.
func CoffeeCups(lateNight, weekend int) int {
	return lateNight*5/2 + weekend
}

// typeCount is one bucket of an insertion-ordered frequency table.
type typeCount struct {
	typ   CommitType
	count int
}

// FavoriteType returns the most frequent commit type. Ties go to the type
// seen first in commits. An empty sequence yields DefaultFavoriteType.
func FavoriteType(commits []Commit) CommitType {
	var counts []typeCount
	index := make(map[CommitType]int)
	for _, c := range commits {
		i, ok := index[c.Type]
		if !ok {
			i = len(counts)
			index[c.Type] = i
			counts = append(counts, typeCount{typ: c.Type})
		}
		counts[i].count++
	}

	if len(counts) == 0 {
		return DefaultFavoriteType
	}
	best := counts[0]
	for _, tc := range counts[1:] {
		if tc.count > best.count {
			best = tc
		}
	}
	return best.typ
}

// ComputeStats folds a commit sequence into Stats. It is pure and defined
// for every input, including an empty one.
func ComputeStats(commits []Commit, bugsFixed int) Stats {
	var lateNight, weekend, lines, hotfixes int
	for _, c := range commits {
		if IsLateNight(c.Hour) {
			lateNight++
		}
		if IsWeekend(c.Date) {
			weekend++
		}
		if c.Type == CommitHotfix {
			hotfixes++
		}
		lines += c.LinesAdded
	}

	return Stats{
		TotalCommits:       len(commits),
		TotalBugsFixed:     bugsFixed,
		LateNightCommits:   lateNight,
		WeekendCommits:     weekend,
		FavoriteCommitType: FavoriteType(commits),
		CoffeeConsumed:     CoffeeCups(lateNight, weekend),
		LinesOfCode:        lines,
		ProductionHotfixes: hotfixes,
	}
}
