package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(msg.String()) {
		case "y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "enter", "esc", "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return m.theme.HeaderStyle().Render(m.prompt) + " " + m.theme.DangerStyle().Render("[y/N]") + " "
}

// Confirm asks a yes/no question and reports whether the user answered yes.
// Anything but "y" declines.
func Confirm(prompt string, theme Theme) (bool, error) {
	p := tea.NewProgram(confirmModel{prompt: prompt, theme: theme})
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}
