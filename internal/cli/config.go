package cli

import (
	"fmt"
	"strings"

	"github.com/dl/linegrep/internal/matcher"
	"github.com/dl/linegrep/internal/output"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode parses the value of --color.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto", "tty", "if-tty":
		return ColorAuto, nil
	case "always", "yes", "force":
		return ColorAlways, nil
	case "never", "no", "none":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Config holds all configuration for a linegrep run. It is built once from
// the command line and not modified while searching.
type Config struct {
	Patterns      []string
	PatternFiles  []string
	Extended      bool
	PCRE          bool
	Fixed         bool
	IgnoreCase    bool
	Invert        bool
	CountOnly     bool
	FileNamesOnly bool
	LineNumbers   bool
	NoFilename    bool
	WithFilename  bool
	NoMessages    bool
	OnlyMatching  bool
	Quiet         bool
	Recursive     bool
	Hidden        bool
	NoIgnore      bool
	JSONOutput    bool
	Color         ColorMode
	Paths         []string
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if len(c.Patterns) == 0 && len(c.PatternFiles) == 0 {
		return fmt.Errorf("no pattern specified")
	}
	n := 0
	for _, set := range []bool{c.Extended, c.PCRE, c.Fixed} {
		if set {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("conflicting matchers specified (-E, -F and -P are exclusive)")
	}
	return nil
}

// MatchOptions returns the pattern compilation options.
func (c *Config) MatchOptions() matcher.Options {
	opts := matcher.Options{IgnoreCase: c.IgnoreCase, Syntax: matcher.SyntaxBasic}
	switch {
	case c.PCRE:
		opts.Syntax = matcher.SyntaxPerl
	case c.Fixed:
		opts.Syntax = matcher.SyntaxFixed
	case c.Extended:
		opts.Syntax = matcher.SyntaxExtended
	}
	return opts
}

// CommandLinePatterns returns the -e and positional patterns, split on
// newlines the way a pattern file would be.
func (c *Config) CommandLinePatterns() []string {
	var out []string
	for _, p := range c.Patterns {
		out = append(out, strings.Split(p, "\n")...)
	}
	return out
}

// OutputMode picks the single output behaviour implied by the flags.
// Quiet beats listing, listing beats counting. Inverted selection has no
// match positions, so it always prints whole lines.
func (c *Config) OutputMode(color bool) output.Mode {
	switch {
	case c.Quiet:
		return output.ModeQuiet
	case c.FileNamesOnly:
		return output.ModeListSources
	case c.CountOnly:
		return output.ModeCount
	case c.Invert:
		return output.ModePlain
	case c.OnlyMatching:
		return output.ModeMatchesOnly
	case color:
		return output.ModeHighlight
	}
	return output.ModePlain
}

// OutputOptions returns formatter options for a run over the given number of sources.
func (c *Config) OutputOptions(color bool, sources int) output.Options {
	return output.Options{
		Mode:        c.OutputMode(color),
		LineNumbers: c.LineNumbers,
		ShowSource:  !c.NoFilename && (c.WithFilename || sources > 1),
	}
}
