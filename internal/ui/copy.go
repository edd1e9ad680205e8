package ui

import (
	"fmt"
	"strings"

	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/dustin/go-humanize"
)

// Fixed presentation copy, shared by the TUI and the report.
const (
	beginPrompt     = "Begin Rewind →"
	bugsTagline     = "Every bug fixed is a victory 🎯"
	incidentTagline = "When production decided to take a break..."
	incidentQuip    = `"Another successful fire drill. Coffee count: ∞"`
	statsTagline    = "The numbers that tell your story"
	closingHeading  = "Here's to Another Year of Beautiful Bugs"
	closingBody     = "Every commit tells a story. Every bug fixed is a lesson learned.\nKeep shipping, keep learning, keep growing."
	closingFooter   = "Made with ❤️, ☕, and way too many Stack Overflow tabs"
)

// closingQuote is the message of the final commit.
func closingQuote(year int) string {
	return fmt.Sprintf("%d: shipped. %d: let's break production again 🚀", year, year+1)
}

type statCard struct {
	Icon  string
	Label string
	Value string
}

// statCards returns the insight cards in display order.
func statCards(s rewind.Stats) []statCard {
	n := func(v int) string { return humanize.Comma(int64(v)) }
	return []statCard{
		{"📦", "Total Commits", n(s.TotalCommits)},
		{"🌙", "Late Night Commits", n(s.LateNightCommits)},
		{"📅", "Weekend Warrior", n(s.WeekendCommits)},
		{"🐛", "Bugs Squashed", n(s.TotalBugsFixed)},
		{"☕", "Cups of Coffee", n(s.CoffeeConsumed)},
		{"⚡", "Emergency Hotfixes", n(s.ProductionHotfixes)},
	}
}

func favoriteLabel(t rewind.CommitType) string {
	return strings.ToUpper(string(t))
}
