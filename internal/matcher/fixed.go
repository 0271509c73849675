package matcher

import "bytes"

// FixedMatcher does literal string matching using bytes.Index.
// Case folding is left to RegexMatcher, which folds Unicode the same way
// the other syntaxes do.
type FixedMatcher struct {
	pattern []byte
}

// NewFixedMatcher creates a FixedMatcher for a non-empty literal.
func NewFixedMatcher(pattern string) *FixedMatcher {
	return &FixedMatcher{pattern: []byte(pattern)}
}

func (m *FixedMatcher) Match(line []byte) bool {
	return bytes.Contains(line, m.pattern)
}

func (m *FixedMatcher) FindIndex(line []byte) []int {
	i := bytes.Index(line, m.pattern)
	if i < 0 {
		return nil
	}
	return []int{i, i + len(m.pattern)}
}

func (m *FixedMatcher) Close() error { return nil }

var _ Matcher = (*FixedMatcher)(nil)
