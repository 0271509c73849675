package output

import (
	"reflect"
	"testing"

	"github.com/dl/linegrep/internal/input"
	"github.com/dl/linegrep/internal/matcher"
)

func line(num int, s string) input.Line {
	return input.Line{Text: []byte(s), Num: num, Source: "test.txt"}
}

func TestTextFormatter_Plain(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"bare", Options{}, "hello world\n"},
		{"line numbers", Options{LineNumbers: true}, "3:hello world\n"},
		{"source", Options{ShowSource: true}, "test.txt:hello world\n"},
		{"source and line numbers", Options{ShowSource: true, LineNumbers: true}, "test.txt:3:hello world\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTextFormatter(tt.opts)
			var tally Tally
			got := String(f.Line(nil, matcher.Outcome{Matched: true}, line(3, "hello world"), &tally))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if tally.Count != 1 || !tally.Matched {
				t.Errorf("tally = %+v, want one match", tally)
			}
		})
	}
}

func TestTextFormatter_NotMatched(t *testing.T) {
	for _, mode := range []Mode{ModePlain, ModeHighlight, ModeMatchesOnly, ModeCount, ModeListSources, ModeQuiet} {
		f := NewTextFormatter(Options{Mode: mode, ShowSource: true})
		var tally Tally
		got := f.Line(nil, matcher.Outcome{}, line(1, "nothing"), &tally)
		if len(got) != 0 {
			t.Errorf("mode %d: got %q for unmatched line", mode, String(got))
		}
		if tally != (Tally{}) {
			t.Errorf("mode %d: tally = %+v, want zero", mode, tally)
		}
	}
}

func TestTextFormatter_Highlight(t *testing.T) {
	f := NewTextFormatter(Options{Mode: ModeHighlight, LineNumbers: true})
	o := matcher.Outcome{Matched: true, Positions: [][2]int{{0, 3}, {7, 10}}}
	var tally Tally
	got := f.Line(nil, o, line(1, "string straight"), &tally)

	want := []Fragment{
		{Kind: KindLineNum, Text: []byte("1")},
		{Kind: KindSeparator, Text: []byte(":")},
		{Kind: KindMatch, Text: []byte("str")},
		{Kind: KindText, Text: []byte("ing ")},
		{Kind: KindMatch, Text: []byte("str")},
		{Kind: KindText, Text: []byte("aight")},
		{Kind: KindNewline, Text: []byte("\n")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextFormatter_HighlightEmptyPatternRendersWholeLine(t *testing.T) {
	tests := []struct {
		name string
		o    matcher.Outcome
	}{
		{"empty pattern only", matcher.Outcome{Matched: true, EmptyOnly: true, Empty: true}},
		{"empty pattern with hits", matcher.Outcome{Matched: true, Empty: true, Positions: [][2]int{{0, 8}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTextFormatter(Options{Mode: ModeHighlight})
			var tally Tally
			got := f.Line(nil, tt.o, line(1, "anything at all"), &tally)
			if s := String(got); s != "anything at all\n" {
				t.Errorf("got %q, want whole line", s)
			}
			for _, frag := range got {
				if frag.Kind == KindMatch {
					t.Errorf("unexpected match fragment %q", frag.Text)
				}
			}
		})
	}
}

func TestTextFormatter_MatchesOnly(t *testing.T) {
	f := NewTextFormatter(Options{Mode: ModeMatchesOnly, ShowSource: true, LineNumbers: true})
	o := matcher.Outcome{Matched: true, Positions: [][2]int{{0, 3}, {7, 10}}}
	var tally Tally
	got := String(f.Line(nil, o, line(4, "string straight"), &tally))
	want := "test.txt:4:str\ntest.txt:4:str\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if tally.Count != 1 {
		t.Errorf("tally.Count = %d, want 1 (lines, not matches)", tally.Count)
	}
}

func TestTextFormatter_MatchesOnlyEmptyPattern(t *testing.T) {
	f := NewTextFormatter(Options{Mode: ModeMatchesOnly, LineNumbers: true})
	o := matcher.Outcome{Matched: true, EmptyOnly: true}
	var tally Tally
	if got := f.Line(nil, o, line(1, "text"), &tally); len(got) != 0 {
		t.Errorf("got %q, want no output", String(got))
	}
}

func TestTextFormatter_Count(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"single source", Options{Mode: ModeCount}, "2\n"},
		{"multi source", Options{Mode: ModeCount, ShowSource: true}, "test.txt:2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTextFormatter(tt.opts)
			var tally Tally
			var buf []Fragment
			for i, matched := range []bool{true, false, true} {
				buf = f.Line(buf, matcher.Outcome{Matched: matched}, line(i+1, "x"), &tally)
			}
			if len(buf) != 0 {
				t.Fatalf("count mode emitted line output %q", String(buf))
			}
			got := String(f.End(buf, "test.txt", &tally))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextFormatter_CountZero(t *testing.T) {
	f := NewTextFormatter(Options{Mode: ModeCount})
	var tally Tally
	if got := String(f.End(nil, "test.txt", &tally)); got != "0\n" {
		t.Errorf("got %q, want %q", got, "0\n")
	}
}

func TestTextFormatter_ListSources(t *testing.T) {
	f := NewTextFormatter(Options{Mode: ModeListSources})
	var tally Tally

	got := f.Line(nil, matcher.Outcome{}, line(1, "miss"), &tally)
	if len(got) != 0 || tally.Done {
		t.Fatalf("unmatched line: got %q, tally %+v", String(got), tally)
	}

	got = f.Line(got, matcher.Outcome{Matched: true}, line(2, "hit"), &tally)
	if s := String(got); s != "test.txt\n" {
		t.Errorf("got %q, want %q", s, "test.txt\n")
	}
	if !tally.Done {
		t.Error("tally.Done = false after first match in list mode")
	}
	if end := f.End(nil, "test.txt", &tally); len(end) != 0 {
		t.Errorf("End emitted %q in list mode", String(end))
	}
}

func TestTextFormatter_Quiet(t *testing.T) {
	f := NewTextFormatter(Options{Mode: ModeQuiet, ShowSource: true, LineNumbers: true})
	var tally Tally
	got := f.Line(nil, matcher.Outcome{Matched: true}, line(1, "hit"), &tally)
	got = f.End(got, "test.txt", &tally)
	if len(got) != 0 {
		t.Errorf("quiet mode emitted %q", String(got))
	}
	if !tally.Matched || !tally.Done {
		t.Errorf("tally = %+v, want matched and done", tally)
	}
}

func TestTextFormatter_RenderDoesNotMutate(t *testing.T) {
	f := NewTextFormatter(Options{Mode: ModeHighlight, LineNumbers: true})
	o := matcher.Outcome{Matched: true, Positions: [][2]int{{1, 2}, {4, 6}}}
	l := line(9, "abcdefgh")
	before := append([][2]int(nil), o.Positions...)

	var t1, t2 Tally
	first := String(f.Line(nil, o, l, &t1))
	second := String(f.Line(nil, o, l, &t2))
	if first != second {
		t.Errorf("second render %q differs from first %q", second, first)
	}
	if !reflect.DeepEqual(o.Positions, before) {
		t.Errorf("positions mutated: %v, want %v", o.Positions, before)
	}
	if string(l.Text) != "abcdefgh" {
		t.Errorf("line text mutated: %q", l.Text)
	}
}

func TestTextFormatter_ReuseBuffer(t *testing.T) {
	f := NewTextFormatter(Options{})
	var tally Tally
	buf := f.Line(nil, matcher.Outcome{Matched: true}, line(1, "first"), &tally)
	buf = f.Line(buf[:0], matcher.Outcome{Matched: true}, line(2, "second"), &tally)
	if got := String(buf); got != "second\n" {
		t.Errorf("got %q, want %q", got, "second\n")
	}
}
