package matcher

import "regexp"

// RegexMatcher uses Go's RE2 regexp engine with leftmost-longest semantics,
// the same preference POSIX regexec applies.
type RegexMatcher struct {
	re *regexp.Regexp
}

// NewRegexMatcher compiles an RE2 pattern.
func NewRegexMatcher(pattern string, ignoreCase bool) (*RegexMatcher, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	re.Longest()
	return &RegexMatcher{re: re}, nil
}

func (m *RegexMatcher) Match(line []byte) bool {
	return m.re.Match(line)
}

func (m *RegexMatcher) FindIndex(line []byte) []int {
	return m.re.FindIndex(line)
}

// Close is a no-op; RE2 programs are garbage collected.
func (m *RegexMatcher) Close() error { return nil }

func (m *RegexMatcher) String() string { return m.re.String() }

var _ Matcher = (*RegexMatcher)(nil)
