package output

// Kind classifies a Fragment so a sink can style it.
type Kind int

const (
	KindText      Kind = iota // unmatched line text, counts, JSON
	KindMatch                 // matched text
	KindSource                // source name
	KindLineNum               // line number
	KindSeparator             // ':' after a credential
	KindNewline               // end of an output line
)

// Fragment is one styled piece of output.
type Fragment struct {
	Kind Kind
	Text []byte
}

var (
	separator = []byte{':'}
	newline   = []byte{'\n'}
)

func text(b []byte) Fragment  { return Fragment{Kind: KindText, Text: b} }
func match(b []byte) Fragment { return Fragment{Kind: KindMatch, Text: b} }

// String concatenates the text of frags without any styling.
func String(frags []Fragment) string {
	n := 0
	for _, f := range frags {
		n += len(f.Text)
	}
	b := make([]byte, 0, n)
	for _, f := range frags {
		b = append(b, f.Text...)
	}
	return string(b)
}
