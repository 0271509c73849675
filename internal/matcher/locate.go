package matcher

import "unicode/utf8"

// Locate appends to dst every disjoint, non-empty match of m in line and
// returns the extended slice. Positions are absolute [start, end) offsets.
//
// The scan restarts on the unconsumed remainder after each match. An empty
// match records nothing and moves the scan forward one character, so patterns
// that match the empty string everywhere still terminate.
func Locate(m Matcher, line []byte, dst [][2]int) [][2]int {
	dst, _ = locate(m, line, dst)
	return dst
}

// locate is Locate that also reports how many times the matcher was invoked.
func locate(m Matcher, line []byte, dst [][2]int) ([][2]int, int) {
	pos, steps := 0, 0
	for pos <= len(line) {
		steps++
		loc := m.FindIndex(line[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if start == end {
			if pos == len(line) {
				break
			}
			_, size := utf8.DecodeRune(line[pos:])
			pos += size
			continue
		}
		dst = append(dst, [2]int{start, end})
		pos = end
	}
	return dst, steps
}
