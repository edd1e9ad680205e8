package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/devrewind/internal/config"
	"github.com/chris-regnier/devrewind/internal/logger"
	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/chris-regnier/devrewind/internal/sequence"
)

// Stagger between items of a reveal.
const (
	bugStagger  = 200 * time.Millisecond
	cardStagger = 100 * time.Millisecond
)

// TUIConfig holds configuration passed to the TUI.
type TUIConfig struct {
	Theme         Theme
	MaxWidth      int
	ReducedMotion bool
	Profile       config.ProfileConfig
}

type rewindModel struct {
	ds  rewind.Dataset
	cfg TUIConfig
	seq sequence.Sequencer

	width    int
	height   int
	quitting bool

	boot      sequence.Boot
	bootTimer sequence.Timer

	// frameTimer drives counters and reveals; one section animates at a time.
	frameTimer sequence.Timer
	commits    sequence.Counter
	lines      sequence.Counter
	bugs       sequence.Reveal
	cards      sequence.Reveal

	incident      sequence.IncidentPhase
	incidentTimer sequence.Timer
	spinner       spinner.Model

	initCmd tea.Cmd
}

func newRewindModel(ds rewind.Dataset, cfg TUIConfig) rewindModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = cfg.Theme.WarningStyle()
	m := rewindModel{
		ds:            ds,
		cfg:           cfg,
		boot:          sequence.NewBoot(sequence.BootScript(ds.Year)),
		bootTimer:     sequence.NewTimer(),
		frameTimer:    sequence.NewTimer(),
		incidentTimer: sequence.NewTimer(),
		spinner:       sp,
	}

	// Init has a value receiver, so the first timer is armed here where the
	// model that keeps it is built.
	if cfg.ReducedMotion {
		m.boot.Finish()
		m.initCmd = m.bootTimer.Start(sequence.BootFinishDelay)
	} else {
		m.initCmd = m.bootTimer.Start(sequence.BootCharDelay)
	}
	return m
}

// RunTUI plays the rewind for ds in the alternate screen until the viewer quits.
func RunTUI(ds rewind.Dataset, cfg TUIConfig) error {
	p := tea.NewProgram(newRewindModel(ds, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m rewindModel) Init() tea.Cmd {
	return m.initCmd
}

func (m rewindModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.teardown()
			m.quitting = true
			return m, tea.Quit
		case "enter", " ", "space", "right", "l":
			return m.handleAdvanceKey()
		}
		return m, nil

	case sequence.FireMsg:
		return m.handleFire(msg)

	case spinner.TickMsg:
		if m.seq.Phase() != sequence.PhaseIncident || m.incident != sequence.IncidentFixing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleAdvanceKey finishes a running entrance animation, or moves on to the
// next section when there is nothing left to finish. The boot screen skips
// straight ahead.
func (m rewindModel) handleAdvanceKey() (tea.Model, tea.Cmd) {
	switch m.seq.Phase() {
	case sequence.PhaseCommits:
		if !m.commits.Done() || !m.lines.Done() {
			m.commits.Finish()
			m.lines.Finish()
			m.frameTimer.Stop()
			return m, nil
		}
	case sequence.PhaseBugs:
		if !m.bugs.Done() {
			m.bugs.Finish()
			m.frameTimer.Stop()
			return m, nil
		}
	case sequence.PhaseStats:
		if !m.cards.Done() {
			m.cards.Finish()
			m.frameTimer.Stop()
			return m, nil
		}
	}
	cmd := m.advance()
	return m, cmd
}

func (m rewindModel) handleFire(msg sequence.FireMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.bootTimer.Accept(msg):
		if m.boot.Complete() {
			cmd := m.advance()
			return m, cmd
		}
		delay, _ := m.boot.Step()
		cmd := m.bootTimer.Start(delay)
		return m, cmd

	case m.frameTimer.Accept(msg):
		cmd := m.stepFrame()
		return m, cmd

	case m.incidentTimer.Accept(msg):
		next, ok := m.incident.Next()
		if !ok {
			return m, nil
		}
		m.incident = next
		logger.Debug("incident phase", "phase", next)
		var cmds []tea.Cmd
		if d := next.Delay(); d > 0 {
			cmds = append(cmds, m.incidentTimer.Start(d))
		}
		if next == sequence.IncidentFixing && !m.cfg.ReducedMotion {
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)
	}

	logger.Debug("dropped stale timer fire", "timer", msg.ID)
	return m, nil
}

// stepFrame advances the current section's entrance animation by one frame.
func (m *rewindModel) stepFrame() tea.Cmd {
	switch m.seq.Phase() {
	case sequence.PhaseCommits:
		a := m.commits.Step()
		b := m.lines.Step()
		if !a || !b {
			return m.frameTimer.Start(sequence.FrameDelay)
		}
	case sequence.PhaseBugs:
		if !m.bugs.Step() {
			return m.frameTimer.Start(bugStagger)
		}
	case sequence.PhaseStats:
		if !m.cards.Step() {
			return m.frameTimer.Start(cardStagger)
		}
	}
	return nil
}

// advance tears down the current section and enters the next one.
func (m *rewindModel) advance() tea.Cmd {
	if m.seq.Done() {
		return nil
	}
	m.teardown()
	m.seq.Advance()
	logger.Debug("phase", "to", m.seq.Phase())
	return m.enter()
}

// teardown stops every timer owned by the current section so a late fire
// cannot touch the next one.
func (m *rewindModel) teardown() {
	m.bootTimer.Stop()
	m.frameTimer.Stop()
	m.incidentTimer.Stop()
}

// enter sets up the current section and returns its first command.
func (m *rewindModel) enter() tea.Cmd {
	reduced := m.cfg.ReducedMotion
	stats := m.ds.Stats

	switch m.seq.Phase() {
	case sequence.PhaseCommits:
		m.commits = sequence.NewCounter(stats.TotalCommits)
		m.lines = sequence.NewCounter(stats.LinesOfCode)
		if reduced {
			m.commits.Finish()
			m.lines.Finish()
			return nil
		}
		return m.frameTimer.Start(sequence.FrameDelay)

	case sequence.PhaseBugs:
		m.bugs = sequence.NewReveal(len(m.ds.Bugs))
		if reduced {
			m.bugs.Finish()
			return nil
		}
		return m.frameTimer.Start(bugStagger)

	case sequence.PhaseIncident:
		m.incident = sequence.IncidentError
		return m.incidentTimer.Start(m.incident.Delay())

	case sequence.PhaseStats:
		m.cards = sequence.NewReveal(len(statCards(stats)))
		if reduced {
			m.cards.Finish()
			return nil
		}
		return m.frameTimer.Start(cardStagger)
	}
	return nil
}

func (m rewindModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.seq.Phase() {
	case sequence.PhaseBoot:
		body = m.viewBoot()
	case sequence.PhaseCommits:
		body = m.viewCommits()
	case sequence.PhaseBugs:
		body = m.viewBugs()
	case sequence.PhaseIncident:
		body = m.viewIncident()
	case sequence.PhaseStats:
		body = m.viewStats()
	case sequence.PhaseClosing:
		body = m.viewClosing()
	}

	return m.frame(body)
}
