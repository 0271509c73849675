package matcher

// Mode selects how much work ScanLine does for a line.
type Mode int

const (
	// ModeBoolean only decides whether the line is selected.
	ModeBoolean Mode = iota
	// ModeOffsets also computes the reconciled match positions.
	ModeOffsets
)

// Outcome is the result of scanning one line.
type Outcome struct {
	Matched bool
	// Positions holds reconciled [start, end) intervals in ModeOffsets.
	Positions [][2]int
	// EmptyOnly is set when the line matched only through the empty pattern.
	EmptyOnly bool
	// Empty is set in ModeOffsets when the empty pattern matched the line,
	// which it does for every line.
	Empty bool
}

// MatchLine reports whether any pattern matches line, XOR invert.
// Without invert it stops at the first matching pattern; with invert every
// pattern has to be ruled out.
func (s *PatternSet) MatchLine(line []byte, invert bool) bool {
	match := s.HasEmpty
	for _, p := range s.Patterns {
		if match && !invert {
			break
		}
		match = p.m.Match(line) || match
	}
	return match != invert
}

// FindLine locates and reconciles the matches of every pattern in line,
// appending them to dst.
func (s *PatternSet) FindLine(line []byte, dst [][2]int) [][2]int {
	for _, p := range s.Patterns {
		dst = Locate(p.m, line, dst)
	}
	return Reconcile(dst)
}

// ScanLine scans line in the given mode. Invert only applies to ModeBoolean.
func ScanLine(s *PatternSet, line []byte, mode Mode, invert bool) Outcome {
	if mode == ModeBoolean {
		return Outcome{Matched: s.MatchLine(line, invert)}
	}
	pos := s.FindLine(line, nil)
	return Outcome{
		Matched:   len(pos) > 0 || s.HasEmpty,
		Positions: pos,
		EmptyOnly: len(pos) == 0 && s.HasEmpty,
		Empty:     s.HasEmpty,
	}
}
