package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type pagerModel struct {
	viewport viewport.Model
	content  string
	ready    bool
	maxWidth int // maximum viewport width (0 = no limit)
	width    int // terminal width
	height   int // terminal height
	theme    Theme
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), msg.Height-1)
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = msg.Height - 1
		}
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// contentWidth returns the effective content width, respecting maxWidth configuration.
func (m pagerModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	footer := m.theme.HelpStyle().Render(fmt.Sprintf("↑/↓ scroll • q quit • %3.f%%", m.viewport.ScrollPercent()*100))
	return m.theme.PaintScreen(m.viewport.View()+"\n"+footer, m.width, m.height, m.contentWidth())
}

// PageOutput writes content to w, paging it through a viewport when w is a
// terminal and the content is taller than the screen.
func PageOutput(w io.Writer, content string, maxWidth int, theme Theme) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w, content)
		return nil
	}

	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil || strings.Count(content, "\n")+1 <= height-2 {
		fmt.Fprint(w, content)
		return nil
	}

	p := tea.NewProgram(pagerModel{content: content, maxWidth: maxWidth, theme: theme}, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
