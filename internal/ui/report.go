package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chris-regnier/devrewind/internal/config"
	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/chris-regnier/devrewind/internal/sequence"
	"github.com/dustin/go-humanize"
)

// ReportOptions controls non-interactive report rendering.
type ReportOptions struct {
	Style   string // glamour style; "notty" for plain output
	Width   int
	Profile config.ProfileConfig
}

// ReportMarkdown renders the whole rewind as a markdown document, section by
// section in presentation order.
func ReportMarkdown(ds rewind.Dataset, profile config.ProfileConfig) string {
	var b strings.Builder
	s := ds.Stats

	fmt.Fprintf(&b, "# Developer Rewind %d\n\n", ds.Year)
	if ds.Source == rewind.SourceMock {
		fmt.Fprintf(&b, "_source: %s, seed %d_\n\n", ds.Source, ds.Seed)
	} else {
		fmt.Fprintf(&b, "_source: %s_\n\n", ds.Source)
	}

	fmt.Fprintf(&b, "## Your %d in Code\n\n", ds.Year)
	fmt.Fprintf(&b, "- **Commits Pushed:** %s\n", humanize.Comma(int64(s.TotalCommits)))
	fmt.Fprintf(&b, "- **Lines of Code:** %s\n\n", humanize.Comma(int64(s.LinesOfCode)))

	counts := ds.MonthlyCounts()
	b.WriteString("| Month | Commits |\n|---|---:|\n")
	for i, c := range counts {
		fmt.Fprintf(&b, "| %s | %d |\n", time.Month(i+1).String()[:3], c)
	}
	b.WriteString("\n")

	b.WriteString("## Bugs Squashed\n\n")
	b.WriteString(bugsTagline + "\n\n")
	if len(ds.Bugs) > 0 {
		b.WriteString("| | Bug | Severity | Fix time | Fixed |\n|---|---|---|---:|---|\n")
		for _, bug := range ds.Bugs {
			fmt.Fprintf(&b, "| %s | %s | %s | %d min | %s |\n",
				bug.Emoji, bug.Name, bug.Severity, bug.TimeToFix, bug.FixedDate)
		}
		b.WriteString("\n")
	}

	inc := ds.Incident
	b.WriteString("## That One Moment\n\n")
	b.WriteString(incidentTagline + "\n\n")
	fmt.Fprintf(&b, "**%s** (%s)\n\n", inc.Title, sequence.IncidentResolved.Label())
	b.WriteString(inc.Description + "\n\n")
	fmt.Fprintf(&b, "- **Impact:** %s\n", inc.Impact)
	fmt.Fprintf(&b, "- **Resolution Time:** %dmin\n", inc.ResolutionTime)
	fmt.Fprintf(&b, "- **When:** %s\n\n", inc.Timestamp.Format("Jan 2, 15:04 MST"))
	fmt.Fprintf(&b, "> %s\n\n", incidentQuip)

	b.WriteString("## Developer Insights\n\n")
	b.WriteString(statsTagline + "\n\n")
	b.WriteString("| | Stat | Value |\n|---|---|---:|\n")
	for _, c := range statCards(s) {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", c.Icon, c.Label, c.Value)
	}
	fmt.Fprintf(&b, "\nYour favorite commit type: **%s**\n\n", favoriteLabel(s.FavoriteCommitType))

	fmt.Fprintf(&b, "## %s\n\n", closingHeading)
	fmt.Fprintf(&b, "```\n$ git commit -m \"%s\"\n```\n\n", closingQuote(ds.Year))
	b.WriteString(strings.ReplaceAll(closingBody, "\n", " ") + "\n\n")
	if profile.GitHubURL != "" {
		fmt.Fprintf(&b, "- GitHub: %s\n", profile.GitHubURL)
	}
	if profile.LinkedInURL != "" {
		fmt.Fprintf(&b, "- LinkedIn: %s\n", profile.LinkedInURL)
	}
	fmt.Fprintf(&b, "\n_%s_\n", closingFooter)

	return b.String()
}

// WriteReport renders the report through glamour and writes it to w.
func WriteReport(w io.Writer, ds rewind.Dataset, opts ReportOptions) error {
	out := RenderMarkdownWithStyle(ReportMarkdown(ds, opts.Profile), opts.Width, opts.Style)
	_, err := fmt.Fprintln(w, out)
	return err
}
