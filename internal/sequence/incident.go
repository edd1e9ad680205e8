package sequence

import "time"

// IncidentPhase is the state of the production-incident animation.
type IncidentPhase int

const (
	IncidentError IncidentPhase = iota
	IncidentFixing
	IncidentResolved
)

// Time spent in each non-terminal incident phase.
const (
	ErrorDuration  = 1500 * time.Millisecond
	FixingDuration = 2000 * time.Millisecond
)

func (p IncidentPhase) String() string {
	switch p {
	case IncidentError:
		return "error"
	case IncidentFixing:
		return "fixing"
	case IncidentResolved:
		return "resolved"
	}
	return "unknown"
}

// Label is the status line shown for the phase.
func (p IncidentPhase) Label() string {
	switch p {
	case IncidentError:
		return "ERROR 500"
	case IncidentFixing:
		return "DEPLOYING HOTFIX..."
	default:
		return "RESOLVED ✓"
	}
}

// Delay is how long the phase lasts before moving on. Resolved is terminal
// and returns zero.
func (p IncidentPhase) Delay() time.Duration {
	switch p {
	case IncidentError:
		return ErrorDuration
	case IncidentFixing:
		return FixingDuration
	}
	return 0
}

// Next returns the following phase, or false if p is terminal.
func (p IncidentPhase) Next() (IncidentPhase, bool) {
	if p >= IncidentResolved {
		return IncidentResolved, false
	}
	return p + 1, true
}
