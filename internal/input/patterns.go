package input

import (
	"errors"
	"os"
)

// ReadPatternFile returns one pattern per line of the file at path.
// An empty line yields the empty pattern.
func ReadPatternFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		return nil, &SourceError{Op: "open", Source: path, Err: err}
	}
	src := NewSource(path, f)
	defer src.Close()

	var patterns []string
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		patterns = append(patterns, string(line.Text))
	}
	return patterns, src.Err()
}
