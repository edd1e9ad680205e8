package rewind

import (
	"fmt"
	"time"
)

type bugTemplate struct {
	name      string
	severity  Severity
	timeToFix int
	month     time.Month
	day       int
	emoji     string
}

var bugTemplates = []bugTemplate{
	{"Button not clickable on mobile", SeverityHigh, 45, time.February, 15, "🐛"},
	{"Memory leak in component", SeverityCritical, 180, time.March, 22, "💥"},
	{"Typo in error message", SeverityLow, 5, time.April, 10, "✍️"},
	{"API timeout issues", SeverityHigh, 120, time.May, 18, "⏱️"},
	{"CSS alignment issue", SeverityMedium, 30, time.June, 5, "🎨"},
	{"Race condition in state update", SeverityCritical, 240, time.July, 12, "🏁"},
	{"Broken link in footer", SeverityLow, 10, time.August, 20, "🔗"},
	{"Form validation bypass", SeverityCritical, 90, time.September, 8, "🚨"},
}

// Bugs returns the fixed list of squashed bugs, dated within year.
func Bugs(year int) []Bug {
	if year <= 0 {
		year = DefaultYear
	}
	bugs := make([]Bug, len(bugTemplates))
	for i, b := range bugTemplates {
		bugs[i] = Bug{
			ID:        fmt.Sprintf("bug-%d", i+1),
			Name:      b.name,
			Severity:  b.severity,
			TimeToFix: b.timeToFix,
			FixedDate: time.Date(year, b.month, b.day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Emoji:     b.emoji,
		}
	}
	return bugs
}

// ProductionIncident returns the year's incident record.
func ProductionIncident(year int) Incident {
	if year <= 0 {
		year = DefaultYear
	}
	return Incident{
		Title:          "500 Error: Database Connection Lost",
		Description:    "Production database connection pool exhausted during Black Friday traffic spike",
		Impact:         "23,450 users affected",
		ResolutionTime: 47,
		Timestamp:      time.Date(year, time.November, 29, 14, 32, 0, 0, time.UTC),
	}
}
