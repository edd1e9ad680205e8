package sequence

import "time"

// FrameDelay is the interval between animation frames.
const FrameDelay = 50 * time.Millisecond

// Counter eases a displayed number towards its target.
type Counter struct {
	target  int
	current float64
}

// NewCounter creates a counter starting at zero.
func NewCounter(target int) Counter {
	return Counter{target: target}
}

// Step moves a fifth of the remaining distance, snapping when close, and
// reports whether the target has been reached.
func (c *Counter) Step() bool {
	diff := float64(c.target) - c.current
	if diff < 1 && diff > -1 {
		c.current = float64(c.target)
		return true
	}
	c.current += diff / 5
	return false
}

// Finish jumps to the target.
func (c *Counter) Finish() { c.current = float64(c.target) }

// Value is the number to display.
func (c Counter) Value() int { return int(c.current + 0.5) }

// Done reports whether the target is displayed.
func (c Counter) Done() bool { return c.Value() == c.target }

// Reveal shows items of a list one at a time.
type Reveal struct {
	total int
	shown int
}

// NewReveal creates a reveal over total items with none shown.
func NewReveal(total int) Reveal {
	return Reveal{total: total}
}

// Step shows one more item and reports whether all are visible.
func (r *Reveal) Step() bool {
	if r.shown < r.total {
		r.shown++
	}
	return r.Done()
}

// Finish shows everything.
func (r *Reveal) Finish() { r.shown = r.total }

// Visible is the number of items shown.
func (r Reveal) Visible() int { return r.shown }

// Done reports whether all items are shown.
func (r Reveal) Done() bool { return r.shown >= r.total }
