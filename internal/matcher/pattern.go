package matcher

import (
	"errors"
	"fmt"
	"regexp"
)

// Syntax selects the pattern dialect.
type Syntax int

const (
	SyntaxBasic    Syntax = iota // POSIX basic regular expressions (default)
	SyntaxExtended               // POSIX extended regular expressions (-E)
	SyntaxPerl                   // PCRE2 (-P)
	SyntaxFixed                  // literal strings (-F)
)

func (s Syntax) String() string {
	switch s {
	case SyntaxBasic:
		return "basic"
	case SyntaxExtended:
		return "extended"
	case SyntaxPerl:
		return "perl"
	case SyntaxFixed:
		return "fixed"
	}
	return fmt.Sprintf("Syntax(%d)", int(s))
}

// Options controls how pattern sources are compiled.
type Options struct {
	IgnoreCase bool
	Syntax     Syntax
}

// CompileError reports a pattern that could not be compiled.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("pattern %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Pattern is a single compiled search expression.
type Pattern struct {
	Source  string
	Options Options
	m       Matcher
}

// Matcher returns the compiled matcher, or nil for the empty pattern.
func (p *Pattern) Matcher() Matcher { return p.m }

// PatternSet is the immutable, ordered collection of usable patterns.
// The empty pattern never appears in Patterns; it only sets HasEmpty.
type PatternSet struct {
	Patterns []*Pattern
	HasEmpty bool
	closed   bool
}

// Compile builds a PatternSet from sources. Patterns that fail to compile are
// left out of the set and reported as *CompileError values joined into the
// returned error. The returned set is never nil.
func Compile(sources []string, opts Options) (*PatternSet, error) {
	set := &PatternSet{Patterns: make([]*Pattern, 0, len(sources))}
	var errs []error

	for _, src := range sources {
		if src == "" {
			set.HasEmpty = true
			continue
		}
		m, err := compileOne(src, opts)
		if err != nil {
			errs = append(errs, &CompileError{Pattern: src, Err: err})
			continue
		}
		set.Patterns = append(set.Patterns, &Pattern{Source: src, Options: opts, m: m})
	}

	return set, errors.Join(errs...)
}

func compileOne(src string, opts Options) (Matcher, error) {
	switch opts.Syntax {
	case SyntaxPerl:
		return NewPCREMatcher(src, opts.IgnoreCase)
	case SyntaxFixed:
		if !opts.IgnoreCase {
			return NewFixedMatcher(src), nil
		}
		return NewRegexMatcher(regexp.QuoteMeta(src), true)
	case SyntaxBasic:
		expr, err := translateBasic(src)
		if err != nil {
			return nil, err
		}
		return NewRegexMatcher(expr, opts.IgnoreCase)
	default:
		expr, err := translateExtended(src)
		if err != nil {
			return nil, err
		}
		return NewRegexMatcher(expr, opts.IgnoreCase)
	}
}

// Len returns the number of patterns, counting the empty pattern once.
func (s *PatternSet) Len() int {
	n := len(s.Patterns)
	if s.HasEmpty {
		n++
	}
	return n
}

// Usable reports whether the set can select any line at all.
func (s *PatternSet) Usable() bool {
	return s.Len() > 0
}

// Close releases compiled matcher resources. It is safe to call more than once.
func (s *PatternSet) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	var errs []error
	for _, p := range s.Patterns {
		if err := p.m.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
