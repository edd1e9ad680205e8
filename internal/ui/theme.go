package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/devrewind/internal/config"
)

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Background    lipgloss.Color
	MarkdownStyle string
}

// Built-in presets.
var presets = map[string]Theme{
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Secondary:     lipgloss.Color("243"),
		Accent:        lipgloss.Color("51"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		Success:       lipgloss.Color("10"),
		Warning:       lipgloss.Color("11"),
		Background:    lipgloss.Color("0"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Secondary:     lipgloss.Color("240"),
		Accent:        lipgloss.Color("27"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		Success:       lipgloss.Color("28"),
		Warning:       lipgloss.Color("136"),
		Background:    lipgloss.Color("254"),
		MarkdownStyle: "light",
	},
	"dracula": {
		Primary:       lipgloss.Color("#F8F8F2"),
		Secondary:     lipgloss.Color("#6272A4"),
		Accent:        lipgloss.Color("#8BE9FD"),
		Muted:         lipgloss.Color("#6272A4"),
		Danger:        lipgloss.Color("#FF5555"),
		Success:       lipgloss.Color("#50FA7B"),
		Warning:       lipgloss.Color("#F1FA8C"),
		Background:    lipgloss.Color("#282A36"),
		MarkdownStyle: "dracula",
	},
	"catppuccin-mocha": {
		Primary:       lipgloss.Color("#CDD6F4"),
		Secondary:     lipgloss.Color("#585B70"),
		Accent:        lipgloss.Color("#89DCEB"),
		Muted:         lipgloss.Color("#6C7086"),
		Danger:        lipgloss.Color("#F38BA8"),
		Success:       lipgloss.Color("#A6E3A1"),
		Warning:       lipgloss.Color("#F9E2AF"),
		Background:    lipgloss.Color("#1E1E2E"),
		MarkdownStyle: "dark",
	},
	"gruvbox-dark": {
		Primary:       lipgloss.Color("#EBDBB2"),
		Secondary:     lipgloss.Color("#665C54"),
		Accent:        lipgloss.Color("#83A598"),
		Muted:         lipgloss.Color("#928374"),
		Danger:        lipgloss.Color("#FB4934"),
		Success:       lipgloss.Color("#B8BB26"),
		Warning:       lipgloss.Color("#FABD2F"),
		Background:    lipgloss.Color("#282828"),
		MarkdownStyle: "dark",
	},
	"gruvbox-light": {
		Primary:       lipgloss.Color("#3C3836"),
		Secondary:     lipgloss.Color("#A89984"),
		Accent:        lipgloss.Color("#076678"),
		Muted:         lipgloss.Color("#928374"),
		Danger:        lipgloss.Color("#CC241D"),
		Success:       lipgloss.Color("#79740E"),
		Warning:       lipgloss.Color("#B57614"),
		Background:    lipgloss.Color("#FBF1C7"),
		MarkdownStyle: "light",
	},
}

// PresetNames lists the built-in theme presets.
func PresetNames() []string {
	return []string{"default-dark", "default-light", "dracula", "catppuccin-mocha", "gruvbox-dark", "gruvbox-light"}
}

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	preset := cfg.Preset
	if preset == "" {
		preset = "default-dark"
	}

	theme, ok := presets[preset]
	if !ok {
		theme = presets["default-dark"]
	}

	override := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	override(&theme.Primary, cfg.Primary)
	override(&theme.Secondary, cfg.Secondary)
	override(&theme.Accent, cfg.Accent)
	override(&theme.Muted, cfg.Muted)
	override(&theme.Danger, cfg.Danger)
	override(&theme.Success, cfg.Success)
	override(&theme.Warning, cfg.Warning)
	override(&theme.Background, cfg.Background)
	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}

	return theme
}

func (t Theme) fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Background(t.Background)
}

// HelpStyle returns a lipgloss style for help/footer text.
func (t Theme) HelpStyle() lipgloss.Style { return t.fg(t.Muted) }

// HeaderStyle returns a lipgloss style for section headings.
func (t Theme) HeaderStyle() lipgloss.Style { return t.fg(t.Primary).Bold(true) }

// AccentStyle returns a lipgloss style for highlighted words and numbers.
func (t Theme) AccentStyle() lipgloss.Style { return t.fg(t.Accent) }

// DangerStyle returns a lipgloss style for errors and the incident alarm.
func (t Theme) DangerStyle() lipgloss.Style { return t.fg(t.Danger) }

// SuccessStyle returns a lipgloss style for resolved states.
func (t Theme) SuccessStyle() lipgloss.Style { return t.fg(t.Success) }

// WarningStyle returns a lipgloss style for in-progress states.
func (t Theme) WarningStyle() lipgloss.Style { return t.fg(t.Warning) }

// BorderStyle returns a lipgloss style with a rounded border using secondary color.
func (t Theme) BorderStyle() lipgloss.Style {
	return t.BoxStyle(t.Secondary)
}

// BoxStyle returns a rounded, padded box with the given border color.
func (t Theme) BoxStyle(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(t.Background).
		Background(t.Background).
		Foreground(t.Primary).
		Padding(0, 2)
}

// severityColor maps a bug severity to a theme color.
func (t Theme) severityColor(s string) lipgloss.Color {
	switch s {
	case "critical":
		return t.Danger
	case "high":
		return t.Warning
	case "medium":
		return t.Accent
	}
	return t.Muted
}

// bgEscapeCode returns the raw ANSI escape sequence to set the theme's
// background color, for use with terminal control codes like \x1b[K.
func (t Theme) bgEscapeCode() string {
	s := string(t.Background)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b int
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return "\x1b[48;5;" + s + "m"
}

// PaintScreen fills every line to termWidth (with optional centering) and pads
// vertically to termHeight, using the theme background color. Each line also
// gets a terminal-level \x1b[K so the background reaches the right edge even
// when lipgloss.Width is slightly off.
func (t Theme) PaintScreen(content string, termWidth, termHeight, contentWidth int) string {
	bgPad := lipgloss.NewStyle().Background(t.Background)
	clearEOL := t.bgEscapeCode() + "\x1b[K"

	leftPad := 0
	if contentWidth > 0 && contentWidth < termWidth {
		leftPad = (termWidth - contentWidth) / 2
	}

	leftStr := ""
	if leftPad > 0 {
		leftStr = bgPad.Render(strings.Repeat(" ", leftPad))
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		rightPad := max(termWidth-leftPad-w, 0)

		var b strings.Builder
		if leftPad > 0 {
			b.WriteString(leftStr)
		}
		b.WriteString(line)
		if rightPad > 0 {
			b.WriteString(bgPad.Render(strings.Repeat(" ", rightPad)))
		}
		b.WriteString(clearEOL)
		lines[i] = b.String()
	}

	emptyLine := bgPad.Render(strings.Repeat(" ", termWidth)) + clearEOL
	for len(lines) < termHeight {
		lines = append(lines, emptyLine)
	}

	return strings.Join(lines[:termHeight], "\n")
}
