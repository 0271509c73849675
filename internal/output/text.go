package output

import (
	"strconv"

	"github.com/dl/linegrep/internal/input"
	"github.com/dl/linegrep/internal/matcher"
)

// TextFormatter renders grep-style text output.
type TextFormatter struct {
	opts Options
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(opts Options) *TextFormatter {
	return &TextFormatter{opts: opts}
}

func (f *TextFormatter) Line(buf []Fragment, o matcher.Outcome, line input.Line, t *Tally) []Fragment {
	if !o.Matched {
		return buf
	}
	tallyLine(t, f.opts.Mode)

	switch f.opts.Mode {
	case ModeCount, ModeQuiet:
		return buf
	case ModeListSources:
		return append(buf, Fragment{Kind: KindSource, Text: []byte(line.Source)}, Fragment{Kind: KindNewline, Text: newline})
	case ModeMatchesOnly:
		for _, pos := range o.Positions {
			buf = f.credentials(buf, line)
			buf = append(buf, match(line.Text[pos[0]:pos[1]]), Fragment{Kind: KindNewline, Text: newline})
		}
		return buf
	case ModeHighlight:
		buf = f.credentials(buf, line)
		if o.Empty {
			// A line selected by the empty pattern is printed as is, even
			// when other patterns matched parts of it.
			buf = append(buf, text(line.Text))
		} else {
			buf = highlightMatches(buf, line.Text, o.Positions)
		}
		return append(buf, Fragment{Kind: KindNewline, Text: newline})
	default:
		buf = f.credentials(buf, line)
		return append(buf, text(line.Text), Fragment{Kind: KindNewline, Text: newline})
	}
}

func (f *TextFormatter) End(buf []Fragment, source string, t *Tally) []Fragment {
	if f.opts.Mode != ModeCount {
		return buf
	}
	if f.opts.ShowSource {
		buf = append(buf, Fragment{Kind: KindSource, Text: []byte(source)}, Fragment{Kind: KindSeparator, Text: separator})
	}
	buf = append(buf, text(strconv.AppendInt(nil, int64(t.Count), 10)))
	return append(buf, Fragment{Kind: KindNewline, Text: newline})
}

// credentials appends the source name and line number prefixes.
func (f *TextFormatter) credentials(buf []Fragment, line input.Line) []Fragment {
	if f.opts.ShowSource {
		buf = append(buf, Fragment{Kind: KindSource, Text: []byte(line.Source)}, Fragment{Kind: KindSeparator, Text: separator})
	}
	if f.opts.LineNumbers {
		buf = append(buf,
			Fragment{Kind: KindLineNum, Text: strconv.AppendInt(nil, int64(line.Num), 10)},
			Fragment{Kind: KindSeparator, Text: separator})
	}
	return buf
}

// highlightMatches interleaves unmatched spans and matched positions.
// With no positions the whole line is emitted as plain text.
func highlightMatches(buf []Fragment, line []byte, positions [][2]int) []Fragment {
	prev := 0
	for _, pos := range positions {
		start, end := pos[0], pos[1]
		if start > len(line) {
			break
		}
		if end > len(line) {
			end = len(line)
		}
		if start > prev {
			buf = append(buf, text(line[prev:start]))
		}
		buf = append(buf, match(line[start:end]))
		prev = end
	}
	if prev < len(line) || len(positions) == 0 {
		buf = append(buf, text(line[prev:]))
	}
	return buf
}

var _ Formatter = (*TextFormatter)(nil)
