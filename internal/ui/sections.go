package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/devrewind/internal/sequence"
	"github.com/dustin/go-humanize"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// contentWidth is the width sections lay themselves out in.
func (m rewindModel) contentWidth() int {
	w := m.width
	if w <= 0 {
		w = 80
	}
	if m.cfg.MaxWidth > 0 && w > m.cfg.MaxWidth {
		w = m.cfg.MaxWidth
	}
	return w
}

// frame centers body, adds the footer, and paints the themed background.
func (m rewindModel) frame(body string) string {
	t := m.cfg.Theme
	w := m.contentWidth()
	ws := lipgloss.WithWhitespaceBackground(t.Background)

	footer := m.footer()
	if m.height <= 0 {
		return lipgloss.JoinVertical(lipgloss.Center, body, "", footer)
	}

	bodyHeight := max(m.height-1, lipgloss.Height(body))
	placed := lipgloss.Place(w, bodyHeight, lipgloss.Center, lipgloss.Center, body, ws)
	placedFooter := lipgloss.PlaceHorizontal(w, lipgloss.Center, footer, ws)
	return t.PaintScreen(placed+"\n"+placedFooter, m.width, m.height, w)
}

func (m rewindModel) footer() string {
	t := m.cfg.Theme
	pos, total := m.seq.Position()
	dots := make([]string, total)
	for i := range dots {
		if i < pos {
			dots[i] = t.AccentStyle().Render("●")
		} else {
			dots[i] = t.HelpStyle().Render("○")
		}
	}
	help := "enter next • q quit"
	if m.seq.Done() {
		help = "q quit"
	}
	return strings.Join(dots, t.HelpStyle().Render(" ")) + t.HelpStyle().Render("   "+help)
}

// heading renders "<lead> <highlight>" with the highlight in the accent color.
func (m rewindModel) heading(lead, highlight, tagline string) string {
	t := m.cfg.Theme
	h := t.HeaderStyle().Render(lead+" ") + t.AccentStyle().Bold(true).Render(highlight)
	if tagline == "" {
		return h
	}
	return lipgloss.JoinVertical(lipgloss.Center, h, "", t.HelpStyle().Render(tagline))
}

func (m rewindModel) viewBoot() string {
	t := m.cfg.Theme
	lines, current := m.boot.Lines()
	last := len(sequence.BootScript(m.ds.Year)) - 1

	var b strings.Builder
	b.WriteString(t.DangerStyle().Render("●") + " " + t.WarningStyle().Render("●") + " " + t.SuccessStyle().Render("●"))
	b.WriteString(t.HelpStyle().Render("  commit-rewind.sh") + "\n\n")
	for i, l := range lines {
		style := t.SuccessStyle()
		if i == last {
			style = t.AccentStyle().Bold(true)
		}
		b.WriteString(style.Render(l))
		if i == current {
			b.WriteString(style.Render("_"))
		}
		b.WriteString("\n")
	}
	if m.boot.Complete() {
		prompt := lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Accent).
			Bold(true).
			Padding(0, 2).
			Render(beginPrompt)
		b.WriteString("\n" + prompt)
	}

	width := min(m.contentWidth()-4, 60)
	return t.BorderStyle().Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m rewindModel) viewCommits() string {
	t := m.cfg.Theme
	counter := func(v int, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			t.AccentStyle().Bold(true).Render(humanize.Comma(int64(v))),
			t.HelpStyle().Render(label),
		)
	}
	counters := lipgloss.JoinHorizontal(lipgloss.Top,
		t.BorderStyle().Width(24).Align(lipgloss.Center).Render(counter(m.commits.Value(), "Commits Pushed")),
		"  ",
		t.BorderStyle().Width(24).Align(lipgloss.Center).Render(counter(m.lines.Value(), "Lines of Code")),
	)

	parts := []string{
		m.heading("Your", fmt.Sprintf("%d", m.ds.Year), ""),
		t.HeaderStyle().Render("in Code"),
		"",
		counters,
	}
	if m.commits.Done() && m.lines.Done() {
		parts = append(parts, "", t.AccentStyle().Render(sparkline(m.ds.MonthlyCounts())), t.HelpStyle().Render("J F M A M J J A S O N D"))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// sparkline draws one block per month scaled to the busiest month. Blocks
// are spaced to line up with the month initials.
func sparkline(counts [12]int) string {
	hi := 0
	for _, c := range counts {
		hi = max(hi, c)
	}
	out := make([]string, len(counts))
	for i, c := range counts {
		idx := 0
		if hi > 0 {
			idx = c * (len(sparkBlocks) - 1) / hi
		}
		out[i] = string(sparkBlocks[idx])
	}
	return strings.Join(out, " ")
}

func (m rewindModel) viewBugs() string {
	t := m.cfg.Theme
	rows := []string{m.heading("Bugs", "Squashed", bugsTagline), ""}
	for _, bug := range m.ds.Bugs[:m.bugs.Visible()] {
		badge := lipgloss.NewStyle().
			Foreground(t.severityColor(string(bug.Severity))).
			Background(t.Background).
			Width(10).
			Render(strings.ToUpper(string(bug.Severity)))
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			t.HeaderStyle().Render(bug.Emoji+"  "),
			badge,
			t.HeaderStyle().Width(32).Render(bug.Name),
			t.HelpStyle().Width(16).Render(fmt.Sprintf("⏱ %dmin to fix", bug.TimeToFix)),
			t.HelpStyle().Render(bug.FixedDate+" "),
			t.SuccessStyle().Render("✓"),
		)
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m rewindModel) viewIncident() string {
	t := m.cfg.Theme
	inc := m.ds.Incident

	var border lipgloss.Color
	var status lipgloss.Style
	var icon string
	switch m.incident {
	case sequence.IncidentError:
		border, status, icon = t.Danger, t.DangerStyle(), "⚠"
	case sequence.IncidentFixing:
		border, status, icon = t.Warning, t.WarningStyle(), m.spinner.View()
		if m.cfg.ReducedMotion {
			icon = "⚙"
		}
	default:
		border, status, icon = t.Success, t.SuccessStyle(), "✔"
	}

	width := min(m.contentWidth()-4, 64)
	inner := width - 4
	lines := []string{
		status.Bold(true).Render(icon + " " + m.incident.Label()),
		"",
		t.HeaderStyle().Render(inc.Title),
		t.HelpStyle().Width(inner).Render(inc.Description),
		"",
		t.HelpStyle().Render("Impact:          ") + t.DangerStyle().Bold(true).Render(inc.Impact),
		t.HelpStyle().Render("Resolution Time: ") + t.SuccessStyle().Bold(true).Render(fmt.Sprintf("%dmin", inc.ResolutionTime)),
	}
	if m.incident == sequence.IncidentResolved {
		lines = append(lines, "", t.HelpStyle().Italic(true).Width(inner).Align(lipgloss.Center).Render(incidentQuip))
	}

	card := t.BoxStyle(border).Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.JoinVertical(lipgloss.Center,
		m.heading("That", "One Moment", incidentTagline),
		"",
		card,
	)
}

func (m rewindModel) viewStats() string {
	t := m.cfg.Theme
	cards := statCards(m.ds.Stats)[:m.cards.Visible()]

	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = t.BorderStyle().Width(24).Align(lipgloss.Center).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				t.HeaderStyle().Render(c.Icon),
				t.AccentStyle().Bold(true).Render(c.Value),
				t.HelpStyle().Render(c.Label),
			))
	}

	var rows []string
	for i := 0; i < len(rendered); i += 3 {
		end := min(i+3, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...))
	}

	parts := []string{m.heading("Developer", "Insights", statsTagline), ""}
	parts = append(parts, rows...)
	if m.cards.Done() {
		parts = append(parts, "",
			t.HelpStyle().Render("Your favorite commit type: ")+
				t.AccentStyle().Bold(true).Render(favoriteLabel(m.ds.Stats.FavoriteCommitType)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m rewindModel) viewClosing() string {
	t := m.cfg.Theme
	p := m.cfg.Profile

	terminal := t.BorderStyle().Render(lipgloss.JoinVertical(lipgloss.Left,
		t.HelpStyle().Render("$ ")+t.SuccessStyle().Render("git commit -m"),
		t.AccentStyle().Bold(true).Render(fmt.Sprintf("%q", closingQuote(m.ds.Year))),
	))

	heading := strings.SplitN(closingHeading, " of ", 2)
	parts := []string{
		terminal,
		"",
		t.HeaderStyle().Render(heading[0]),
		t.AccentStyle().Bold(true).Render("of " + heading[1]),
		"",
		t.HelpStyle().Align(lipgloss.Center).Render(closingBody),
		"",
	}

	var links []string
	if p.GitHubURL != "" {
		links = append(links, t.HeaderStyle().Render("GitHub ")+t.AccentStyle().Underline(true).Render(p.GitHubURL))
	}
	if p.LinkedInURL != "" {
		links = append(links, t.HeaderStyle().Render("LinkedIn ")+t.AccentStyle().Underline(true).Render(p.LinkedInURL))
	}
	if len(links) > 0 {
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Center, links...), "")
	}
	if p.Name != "" {
		parts = append(parts, t.HelpStyle().Render("Signed-off-by: "+p.Name))
	}
	parts = append(parts, t.HelpStyle().Render(closingFooter))
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
