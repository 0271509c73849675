package matcher

import (
	"reflect"
	"testing"
)

func TestFixedMatcher(t *testing.T) {
	tests := []struct {
		pattern string
		line    string
		want    []int
	}{
		{"a.b", "xa.bx", []int{1, 4}},
		{"a.b", "axb", nil},
		{"[x]", "a[x]b[x]", []int{1, 4}},
		{"ab", "", nil},
		{"héllo", "say héllo", []int{4, 10}},
	}
	for _, tt := range tests {
		m := NewFixedMatcher(tt.pattern)
		got := m.FindIndex([]byte(tt.line))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FindIndex(%q, %q) = %v, want %v", tt.pattern, tt.line, got, tt.want)
		}
		if m.Match([]byte(tt.line)) != (tt.want != nil) {
			t.Errorf("Match(%q, %q) disagrees with FindIndex", tt.pattern, tt.line)
		}
	}
}

func TestFixedMatcher_Locate(t *testing.T) {
	got := Locate(NewFixedMatcher("aa"), []byte("aaaa"), nil)
	want := [][2]int{{0, 2}, {2, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Locate = %v, want %v", got, want)
	}
}

func TestCompile_FixedEngine(t *testing.T) {
	set, err := Compile([]string{"a.b"}, Options{Syntax: SyntaxFixed})
	if err != nil {
		t.Fatal(err)
	}
	defer set.Close()
	if _, ok := set.Patterns[0].Matcher().(*FixedMatcher); !ok {
		t.Errorf("case-sensitive fixed pattern compiled to %T, want *FixedMatcher", set.Patterns[0].Matcher())
	}

	set, err = Compile([]string{"a.b"}, Options{Syntax: SyntaxFixed, IgnoreCase: true})
	if err != nil {
		t.Fatal(err)
	}
	defer set.Close()
	if _, ok := set.Patterns[0].Matcher().(*RegexMatcher); !ok {
		t.Errorf("caseless fixed pattern compiled to %T, want *RegexMatcher", set.Patterns[0].Matcher())
	}
}
