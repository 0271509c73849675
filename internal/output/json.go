package output

import (
	"encoding/json"

	"github.com/dl/linegrep/internal/input"
	"github.com/dl/linegrep/internal/matcher"
)

// JSONFormatter formats results as JSON Lines (one JSON object per record).
type JSONFormatter struct {
	mode Mode
}

// NewJSONFormatter creates a JSONFormatter. Only the mode of opts is used;
// JSON records always carry the source and line number.
func NewJSONFormatter(opts Options) *JSONFormatter {
	return &JSONFormatter{mode: opts.Mode}
}

// jsonMatch is the JSON serialization format for a selected line.
type jsonMatch struct {
	Type    string    `json:"type"`
	Source  string    `json:"source"`
	LineNum int       `json:"line_number"`
	Text    string    `json:"text"`
	Matches []jsonPos `json:"matches,omitempty"`
}

type jsonPos struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// jsonSummary is emitted once per source in count and list modes.
type jsonSummary struct {
	Type   string `json:"type"`
	Source string `json:"source"`
	Count  int    `json:"count"`
}

func (f *JSONFormatter) Line(buf []Fragment, o matcher.Outcome, line input.Line, t *Tally) []Fragment {
	if !o.Matched {
		return buf
	}
	tallyLine(t, f.mode)

	switch f.mode {
	case ModeCount, ModeQuiet:
		return buf
	case ModeListSources:
		return appendJSON(buf, jsonSummary{Type: "source", Source: line.Source, Count: t.Count})
	}

	jm := jsonMatch{
		Type:    "match",
		Source:  line.Source,
		LineNum: line.Num,
		Text:    string(line.Text),
	}
	if len(o.Positions) > 0 {
		jm.Matches = make([]jsonPos, len(o.Positions))
		for i, pos := range o.Positions {
			jm.Matches[i] = jsonPos{Start: pos[0], End: pos[1]}
		}
	}
	return appendJSON(buf, jm)
}

func (f *JSONFormatter) End(buf []Fragment, source string, t *Tally) []Fragment {
	if f.mode != ModeCount {
		return buf
	}
	return appendJSON(buf, jsonSummary{Type: "summary", Source: source, Count: t.Count})
}

// appendJSON appends v as one JSON line. v is always a jsonMatch or
// jsonSummary: strings, ints and slices of them cannot fail to marshal,
// and invalid UTF-8 in line text is coerced to U+FFFD.
func appendJSON(buf []Fragment, v any) []Fragment {
	data, _ := json.Marshal(v)
	return append(buf, text(data), Fragment{Kind: KindNewline, Text: newline})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
