package sequence

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTimerID int64

func nextTimerID() int {
	return int(atomic.AddInt64(&lastTimerID, 1))
}

// FireMsg is delivered when a timer's delay elapses. Pass it to the owning
// timer's Accept; fires from stopped or restarted timers are rejected.
type FireMsg struct {
	ID  int
	At  time.Time
	tag int
}

// Timer is a cancellable one-shot callback tied to the lifetime of the
// component that owns it. Stop it when the component goes away.
type Timer struct {
	id      int
	tag     int
	running bool
}

// NewTimer creates a stopped timer with a unique ID.
func NewTimer() Timer {
	return Timer{id: nextTimerID()}
}

// ID identifies the timer's fire messages.
func (t Timer) ID() int { return t.id }

// Running reports whether a fire is pending.
func (t Timer) Running() bool { return t.running }

// Start arms the timer, replacing any pending fire, and returns the command
// that delivers the FireMsg after d.
func (t *Timer) Start(d time.Duration) tea.Cmd {
	t.tag++
	t.running = true
	id, tag := t.id, t.tag
	return tea.Tick(d, func(at time.Time) tea.Msg {
		return FireMsg{ID: id, At: at, tag: tag}
	})
}

// Stop disarms the timer. A fire already in flight will be rejected.
func (t *Timer) Stop() {
	t.tag++
	t.running = false
}

// Accept reports whether msg is the pending fire of this timer and, if so,
// marks the timer as no longer running.
func (t *Timer) Accept(msg FireMsg) bool {
	if !t.running || msg.ID != t.id || msg.tag != t.tag {
		return false
	}
	t.running = false
	return true
}

// Pending returns the fire message the timer will deliver, so a model can
// be driven synchronously without waiting out the delay.
func (t Timer) Pending() (FireMsg, bool) {
	if !t.running {
		return FireMsg{}, false
	}
	return FireMsg{ID: t.id, tag: t.tag}, true
}
