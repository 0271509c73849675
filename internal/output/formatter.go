package output

import (
	"github.com/dl/linegrep/internal/input"
	"github.com/dl/linegrep/internal/matcher"
)

// Mode is the output behaviour for selected lines. Modes are mutually exclusive.
type Mode int

const (
	ModePlain       Mode = iota // whole selected lines
	ModeHighlight               // whole lines with matches marked
	ModeMatchesOnly             // only the matched substrings (-o)
	ModeCount                   // per-source count of selected lines (-c)
	ModeListSources             // names of sources with a selected line (-l)
	ModeQuiet                   // nothing (-q)
)

// ScanMode returns how much detail the matcher has to produce for m.
func (m Mode) ScanMode() matcher.Mode {
	if m == ModeHighlight || m == ModeMatchesOnly {
		return matcher.ModeOffsets
	}
	return matcher.ModeBoolean
}

// Options configures a Formatter.
type Options struct {
	Mode        Mode
	LineNumbers bool // prefix lines with their number (-n)
	ShowSource  bool // prefix lines with the source name
}

// Tally is the running result for one source.
type Tally struct {
	Count   int
	Matched bool
	// Done is set once nothing more can be learned from the source.
	Done bool
}

// Reset clears the tally for the next source.
func (t *Tally) Reset() { *t = Tally{} }

// Formatter turns line outcomes into output fragments.
// buf is a reusable buffer: implementations append to it and return the
// result, so callers can pass buf[:0] to reuse the backing array.
// Formatters never modify the Outcome they are given.
type Formatter interface {
	// Line records the outcome for line in t and appends its output.
	Line(buf []Fragment, o matcher.Outcome, line input.Line, t *Tally) []Fragment
	// End appends the end-of-source summary for source.
	End(buf []Fragment, source string, t *Tally) []Fragment
}

// tallyLine counts a selected line. In list and quiet modes the first
// selected line settles the source.
func tallyLine(t *Tally, mode Mode) {
	t.Count++
	t.Matched = true
	if mode == ModeListSources || mode == ModeQuiet {
		t.Done = true
	}
}
