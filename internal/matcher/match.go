package matcher

// Matcher tests a single compiled pattern against line text.
type Matcher interface {
	// Match reports whether the pattern matches anywhere in line.
	Match(line []byte) bool

	// FindIndex returns the leftmost match in line as a two-element slice
	// holding its start and end offsets, or nil if there is none.
	FindIndex(line []byte) []int

	// Close releases resources held by the compiled pattern.
	Close() error
}
