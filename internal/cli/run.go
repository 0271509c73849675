package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dl/linegrep/internal/input"
	"github.com/dl/linegrep/internal/matcher"
	"github.com/dl/linegrep/internal/output"
	"github.com/dl/linegrep/internal/walker"
)

// Exit codes.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 2
)

// Run executes the search with the given config.
// Returns exit code: 0 = match found, 1 = no match, 2 = error.
func Run(ctx context.Context, cfg Config, stdout, stderr io.Writer) int {
	logger := log.NewWithOptions(stderr, log.Options{
		Level:  log.WarnLevel,
		Prefix: "linegrep",
	})

	s := &search{cfg: cfg, logger: logger}

	set, ok := s.compile()
	if set != nil {
		defer set.Close()
	}
	if !ok {
		return ExitError
	}
	if !set.Usable() {
		// Only empty pattern files were given: nothing can be selected.
		return s.exitCode()
	}
	s.set = set

	sources := s.sources()

	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorAuto:
		if f, ok := stdout.(*os.File); ok {
			useColor = output.IsTerminal(f.Fd())
		}
	}
	useColor = useColor && !cfg.JSONOutput

	opts := cfg.OutputOptions(useColor, len(sources))
	styles := output.NoStyles()
	if useColor {
		styles = output.NewStyles(stdout, cfg.Color == ColorAlways)
	}
	if cfg.JSONOutput {
		s.formatter = output.NewJSONFormatter(opts)
	} else {
		s.formatter = output.NewTextFormatter(opts)
	}
	s.scanMode = opts.Mode.ScanMode()
	s.w = output.NewWriter(stdout, styles)

	for _, path := range sources {
		if ctx.Err() != nil {
			break
		}
		if err := s.searchSource(ctx, path); err != nil {
			logger.Error("write failed", "err", err)
			s.failed = true
			break
		}
		if s.matched && cfg.Quiet {
			break
		}
	}

	if err := s.w.Flush(); err != nil {
		logger.Error("write failed", "err", err)
		s.failed = true
	}
	return s.exitCode()
}

// search carries the state of one run across sources.
type search struct {
	cfg       Config
	logger    *log.Logger
	set       *matcher.PatternSet
	formatter output.Formatter
	scanMode  matcher.Mode
	w         *output.Writer
	buf       []output.Fragment
	tally     output.Tally

	matched bool // any source had a selected line
	failed  bool // any error was reported
}

// compile gathers patterns from the command line and pattern files and
// compiles them. It reports false when no usable pattern is left.
func (s *search) compile() (*matcher.PatternSet, bool) {
	patterns := s.cfg.CommandLinePatterns()
	for _, path := range s.cfg.PatternFiles {
		ps, err := input.ReadPatternFile(path)
		if err != nil {
			s.logger.Error("cannot read pattern file", "path", path, "err", err)
			s.failed = true
		}
		patterns = append(patterns, ps...)
	}

	set, err := matcher.Compile(patterns, s.cfg.MatchOptions())
	if err != nil {
		s.failed = true
		for _, e := range unwrapAll(err) {
			var ce *matcher.CompileError
			if errors.As(e, &ce) {
				s.logger.Error("invalid pattern", "pattern", ce.Pattern, "err", ce.Err)
			} else {
				s.logger.Error("invalid pattern", "err", e)
			}
		}
	}
	if !set.Usable() && s.failed {
		s.logger.Error("no usable pattern")
		return set, false
	}
	return set, true
}

// sources expands the path arguments, logging traversal errors.
func (s *search) sources() []string {
	paths := s.cfg.Paths
	if len(paths) == 0 {
		paths = []string{"-"}
		if s.cfg.Recursive {
			paths = []string{"."}
		}
	}

	var out []string
	walker.Expand(paths, walker.Options{
		Recursive: s.cfg.Recursive,
		NoIgnore:  s.cfg.NoIgnore,
		Hidden:    s.cfg.Hidden,
	}, func(path string, err error) error {
		if err != nil {
			s.sourceError(path, err)
			return nil
		}
		out = append(out, path)
		return nil
	})
	return out
}

// searchSource scans one source to its end, or until the output mode has
// nothing more to learn from it. Only write errors are returned; source
// errors are reported and end the source.
func (s *search) searchSource(ctx context.Context, path string) error {
	src, err := input.Open(path)
	if err != nil {
		s.sourceError(path, err)
		return nil
	}
	defer src.Close()

	tally := &s.tally
	tally.Reset()
	for !tally.Done && ctx.Err() == nil {
		line, ok := src.Next()
		if !ok {
			break
		}
		o := matcher.ScanLine(s.set, line.Text, s.scanMode, s.cfg.Invert)
		s.buf = s.formatter.Line(s.buf[:0], o, line, tally)
		if err := s.w.Write(s.buf); err != nil {
			return err
		}
	}
	if err := src.Err(); err != nil {
		s.sourceError(path, err)
	}
	if tally.Matched {
		s.matched = true
	}

	s.buf = s.formatter.End(s.buf[:0], src.Name(), tally)
	return s.w.Write(s.buf)
}

// sourceError reports a source that could not be opened or read, unless
// messages are suppressed.
func (s *search) sourceError(path string, err error) {
	s.failed = true
	if s.cfg.NoMessages || s.cfg.Quiet {
		return
	}
	s.logger.Warn("cannot read source", "source", path, "err", unwrapSource(err))
}

func (s *search) exitCode() int {
	switch {
	case s.matched && (s.cfg.Quiet || !s.failed):
		return ExitMatch
	case s.failed:
		return ExitError
	}
	return ExitNoMatch
}

// unwrapAll flattens an errors.Join tree into its leaves.
func unwrapAll(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, unwrapAll(e)...)
		}
		return out
	}
	return []error{err}
}

// unwrapSource strips the operation and path already carried in the log
// fields, leaving the underlying cause.
func unwrapSource(err error) error {
	var se *input.SourceError
	if errors.As(err, &se) {
		return se.Err
	}
	var we *walker.WalkError
	if errors.As(err, &we) {
		var pe *fs.PathError
		if errors.As(we.Err, &pe) {
			return pe.Err
		}
		return we.Err
	}
	return err
}
