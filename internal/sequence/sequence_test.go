package sequence

import (
	"strings"
	"testing"
	"time"
)

func TestSequencerIsOneWay(t *testing.T) {
	var s Sequencer
	if s.Phase() != PhaseBoot {
		t.Fatalf("expected boot, got %s", s.Phase())
	}

	var seen []Phase
	seen = append(seen, s.Phase())
	for s.Advance() {
		seen = append(seen, s.Phase())
	}

	if len(seen) != len(Phases) {
		t.Fatalf("expected %d phases, got %d", len(Phases), len(seen))
	}
	for i, p := range Phases {
		if seen[i] != p {
			t.Errorf("phase %d: expected %s, got %s", i, p, seen[i])
		}
	}

	if !s.Done() {
		t.Error("expected sequencer to be done")
	}
	if s.Advance() {
		t.Error("expected Advance to fail at the last phase")
	}
	if s.Phase() != PhaseClosing {
		t.Errorf("expected to stay on closing, got %s", s.Phase())
	}
	if i, n := s.Position(); i != n {
		t.Errorf("expected last position, got %d/%d", i, n)
	}
}

func TestIncidentPhases(t *testing.T) {
	p := IncidentError
	if p.Delay() != 1500*time.Millisecond {
		t.Errorf("error delay: got %v", p.Delay())
	}

	next, ok := p.Next()
	if !ok || next != IncidentFixing {
		t.Fatalf("expected fixing, got %s", next)
	}
	if next.Delay() != 2000*time.Millisecond {
		t.Errorf("fixing delay: got %v", next.Delay())
	}

	last, ok := next.Next()
	if !ok || last != IncidentResolved {
		t.Fatalf("expected resolved, got %s", last)
	}
	if _, ok := last.Next(); ok {
		t.Error("resolved must be terminal")
	}
	if last.Delay() != 0 {
		t.Errorf("resolved delay: got %v", last.Delay())
	}

	labels := map[IncidentPhase]string{
		IncidentError:    "ERROR 500",
		IncidentFixing:   "DEPLOYING HOTFIX...",
		IncidentResolved: "RESOLVED ✓",
	}
	for phase, want := range labels {
		if phase.Label() != want {
			t.Errorf("%s: expected label %q, got %q", phase, want, phase.Label())
		}
	}
}

func TestTypewriter(t *testing.T) {
	tw := NewTypewriter("héllo")
	if tw.Started() || tw.Text() != "" {
		t.Fatal("expected nothing revealed")
	}
	steps := 0
	for !tw.Step() {
		steps++
	}
	if steps != 4 {
		t.Errorf("expected 4 incomplete steps for 5 runes, got %d", steps)
	}
	if tw.Text() != "héllo" {
		t.Errorf("got %q", tw.Text())
	}
	// stepping a complete line is a no-op
	tw.Step()
	if tw.Text() != "héllo" {
		t.Errorf("got %q after extra step", tw.Text())
	}
}

func TestBootRunsLinesInOrder(t *testing.T) {
	script := BootScript(2025)
	if !strings.Contains(script[0], "2025") {
		t.Errorf("expected year in first line, got %q", script[0])
	}

	b := NewBoot([]string{"ab", "c"})

	d, done := b.Step()
	if done || d != BootCharDelay {
		t.Fatalf("expected char delay, got %v done=%v", d, done)
	}
	lines, cur := b.Lines()
	if len(lines) != 1 || lines[0] != "a" || cur != 0 {
		t.Fatalf("unexpected lines %v cur=%d", lines, cur)
	}

	d, done = b.Step()
	if done || d != BootLineDelay {
		t.Fatalf("expected line delay after first line, got %v done=%v", d, done)
	}

	d, done = b.Step()
	if !done || d != BootFinishDelay {
		t.Fatalf("expected finish delay, got %v done=%v", d, done)
	}
	lines, cur = b.Lines()
	if len(lines) != 2 || lines[1] != "c" || cur != -1 {
		t.Fatalf("unexpected lines %v cur=%d", lines, cur)
	}
}

func TestBootFinish(t *testing.T) {
	b := NewBoot(BootScript(2025))
	b.Finish()
	if !b.Complete() {
		t.Fatal("expected complete")
	}
	lines, _ := b.Lines()
	if len(lines) != 5 || lines[4] != "> Ready." {
		t.Errorf("unexpected lines %v", lines)
	}
}

func TestCounterConverges(t *testing.T) {
	c := NewCounter(4321)
	steps := 0
	for !c.Step() {
		steps++
		if steps > 200 {
			t.Fatal("counter did not converge")
		}
	}
	if c.Value() != 4321 || !c.Done() {
		t.Errorf("expected 4321, got %d", c.Value())
	}

	z := NewCounter(0)
	if !z.Step() {
		t.Error("zero counter should finish immediately")
	}
}

func TestReveal(t *testing.T) {
	r := NewReveal(3)
	if r.Visible() != 0 {
		t.Fatal("expected nothing visible")
	}
	r.Step()
	r.Step()
	if r.Done() {
		t.Fatal("not done after 2 of 3")
	}
	if !r.Step() || r.Visible() != 3 {
		t.Fatal("expected done")
	}
	r.Step()
	if r.Visible() != 3 {
		t.Error("reveal overshot")
	}
}

func TestTimerRejectsStaleFires(t *testing.T) {
	tm := NewTimer()
	other := NewTimer()
	if tm.ID() == other.ID() {
		t.Fatal("timer IDs must be unique")
	}

	if cmd := tm.Start(time.Second); cmd == nil {
		t.Fatal("expected a command")
	}
	first := FireMsg{ID: tm.ID(), tag: tm.tag}

	// restarting replaces the pending fire
	tm.Start(time.Second)
	if tm.Accept(first) {
		t.Error("stale fire accepted after restart")
	}

	current := FireMsg{ID: tm.ID(), tag: tm.tag}
	if other.Accept(current) {
		t.Error("fire accepted by the wrong timer")
	}
	if !tm.Accept(current) {
		t.Fatal("current fire rejected")
	}
	if tm.Running() {
		t.Error("timer still running after fire")
	}
	if tm.Accept(current) {
		t.Error("fire accepted twice")
	}

	tm.Start(time.Second)
	pending := FireMsg{ID: tm.ID(), tag: tm.tag}
	tm.Stop()
	if tm.Accept(pending) {
		t.Error("fire accepted after Stop")
	}
}

func TestTimerPending(t *testing.T) {
	tm := NewTimer()
	if _, ok := tm.Pending(); ok {
		t.Fatal("stopped timer reports a pending fire")
	}

	tm.Start(time.Hour)
	msg, ok := tm.Pending()
	if !ok {
		t.Fatal("armed timer reports no pending fire")
	}
	if !tm.Accept(msg) {
		t.Error("pending fire rejected")
	}
	if _, ok := tm.Pending(); ok {
		t.Error("fired timer still pending")
	}
}

func TestTimerCommandDeliversFire(t *testing.T) {
	tm := NewTimer()
	cmd := tm.Start(time.Millisecond)
	msg, ok := cmd().(FireMsg)
	if !ok {
		t.Fatalf("expected FireMsg, got %T", msg)
	}
	if msg.At.IsZero() {
		t.Error("expected fire time to be set")
	}
	if !tm.Accept(msg) {
		t.Error("delivered fire rejected")
	}
}
