// Package sequence holds the presentation state machines: the one-way
// section sequence, the incident phases, and the small animation states
// (typewriter, counters, staggered reveals) the sections step through.
package sequence

// Phase is one section of the presentation.
type Phase int

const (
	PhaseBoot Phase = iota
	PhaseCommits
	PhaseBugs
	PhaseIncident
	PhaseStats
	PhaseClosing
)

// Phases lists every phase in presentation order.
var Phases = []Phase{PhaseBoot, PhaseCommits, PhaseBugs, PhaseIncident, PhaseStats, PhaseClosing}

func (p Phase) String() string {
	switch p {
	case PhaseBoot:
		return "boot"
	case PhaseCommits:
		return "commits"
	case PhaseBugs:
		return "bugs"
	case PhaseIncident:
		return "incident"
	case PhaseStats:
		return "stats"
	case PhaseClosing:
		return "closing"
	}
	return "unknown"
}

// Sequencer walks the phases forward. It never moves backwards.
type Sequencer struct {
	phase Phase
}

// Phase returns the current phase.
func (s Sequencer) Phase() Phase { return s.phase }

// Done reports whether the final phase has been reached.
func (s Sequencer) Done() bool { return s.phase == PhaseClosing }

// Advance moves to the next phase. It returns false, and stays put, once
// the final phase is reached.
func (s *Sequencer) Advance() bool {
	if s.Done() {
		return false
	}
	s.phase++
	return true
}

// Position returns the 1-based index of the current phase and the total.
func (s Sequencer) Position() (int, int) {
	return int(s.phase) + 1, len(Phases)
}
