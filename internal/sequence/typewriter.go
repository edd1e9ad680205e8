package sequence

import (
	"fmt"
	"time"
)

// Typewriter reveals a line of text one rune per step.
type Typewriter struct {
	text  []rune
	shown int
}

// NewTypewriter creates a typewriter with nothing revealed yet.
func NewTypewriter(text string) Typewriter {
	return Typewriter{text: []rune(text)}
}

// Step reveals one more rune and reports whether the line is complete.
func (t *Typewriter) Step() bool {
	if t.shown < len(t.text) {
		t.shown++
	}
	return t.Complete()
}

// Finish reveals the whole line.
func (t *Typewriter) Finish() { t.shown = len(t.text) }

// Started reports whether at least one rune is visible.
func (t Typewriter) Started() bool { return t.shown > 0 }

// Complete reports whether the whole line is visible.
func (t Typewriter) Complete() bool { return t.shown >= len(t.text) }

// Text returns the visible prefix.
func (t Typewriter) Text() string { return string(t.text[:t.shown]) }

// Boot timing.
const (
	BootCharDelay   = 30 * time.Millisecond
	BootLineDelay   = 100 * time.Millisecond
	BootFinishDelay = 500 * time.Millisecond
)

// BootScript is the text typed out on the boot screen.
func BootScript(year int) []string {
	return []string{
		fmt.Sprintf("> Initializing %d Developer Rewind...", year),
		"> Loading commit history...",
		"> Analyzing bug fixes...",
		"> Calculating caffeine consumption...",
		"> Ready.",
	}
}

// Boot types its lines one after another.
type Boot struct {
	lines   []Typewriter
	current int
}

// NewBoot creates a boot script from lines.
func NewBoot(lines []string) Boot {
	b := Boot{lines: make([]Typewriter, len(lines))}
	for i, l := range lines {
		b.lines[i] = NewTypewriter(l)
	}
	return b
}

// Step reveals the next rune and returns the delay before the following
// step. done is true once every line is complete; the returned delay is
// then BootFinishDelay.
func (b *Boot) Step() (next time.Duration, done bool) {
	if b.Complete() {
		return BootFinishDelay, true
	}
	if b.lines[b.current].Step() {
		b.current++
		if b.Complete() {
			return BootFinishDelay, true
		}
		return BootLineDelay, false
	}
	return BootCharDelay, false
}

// Finish completes every line.
func (b *Boot) Finish() {
	for i := range b.lines {
		b.lines[i].Finish()
	}
	b.current = len(b.lines)
}

// Complete reports whether every line has been typed.
func (b Boot) Complete() bool { return b.current >= len(b.lines) }

// Lines returns the lines that have started, with their visible text, and
// the index of the line still being typed (-1 when complete).
func (b Boot) Lines() ([]string, int) {
	var out []string
	for _, l := range b.lines {
		if !l.Started() {
			break
		}
		out = append(out, l.Text())
	}
	if b.Complete() {
		return out, -1
	}
	return out, b.current
}
