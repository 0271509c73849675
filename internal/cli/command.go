package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Execute parses args, runs the search and returns the process exit code.
// Arguments from the config file are placed before args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	code := ExitMatch
	cmd := newCommand(stdout, stderr, &code)
	argv := append([]string{}, LoadConfigArgs()...)
	cmd.SetArgs(append(argv, args...))
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "linegrep: %v\n", err)
		return ExitError
	}
	return code
}

func newCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	var cfg Config
	var color string

	cmd := &cobra.Command{
		Use:   "linegrep [flags] PATTERN [FILE...]",
		Short: "Print lines that match patterns",
		Long: `Search each FILE for lines matching PATTERN and print them.

With no FILE, or when FILE is -, read standard input. With -r and no FILE,
search the working directory. Patterns are POSIX basic regular expressions
unless -E, -F or -P is given.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(cfg.Patterns) == 0 && len(cfg.PatternFiles) == 0 && len(args) > 0 {
				cfg.Patterns = []string{args[0]}
				args = args[1:]
			}
			cfg.Paths = args

			mode, err := ParseColorMode(color)
			if err != nil {
				return err
			}
			cfg.Color = mode
			if err := cfg.Validate(); err != nil {
				return err
			}

			*code = Run(cmd.Context(), cfg, stdout, stderr)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.SetInterspersed(true)
	bindFlags(flags, &cfg)
	flags.StringVar(&color, "color", "auto", "use color: auto, always or never")
	flags.Lookup("color").NoOptDefVal = "auto"
	// -h belongs to --no-filename.
	flags.Bool("help", false, "show this help")

	return cmd
}

func bindFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.StringArrayVarP(&cfg.Patterns, "regexp", "e", nil, "use `PATTERN` for matching (repeatable)")
	flags.StringArrayVarP(&cfg.PatternFiles, "file", "f", nil, "read patterns from `FILE`, one per line (repeatable)")

	flags.BoolVarP(&cfg.Extended, "extended-regexp", "E", false, "patterns are extended regular expressions")
	flags.BoolVarP(&cfg.Fixed, "fixed-strings", "F", false, "patterns are literal strings")
	flags.BoolVarP(&cfg.PCRE, "perl-regexp", "P", false, "patterns are Perl-compatible regular expressions")
	flags.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "ignore case distinctions")
	flags.BoolVarP(&cfg.Invert, "invert-match", "v", false, "select non-matching lines")

	flags.BoolVarP(&cfg.CountOnly, "count", "c", false, "print only a count of selected lines per source")
	flags.BoolVarP(&cfg.FileNamesOnly, "files-with-matches", "l", false, "print only names of sources with selected lines")
	flags.BoolVarP(&cfg.LineNumbers, "line-number", "n", false, "prefix each line with its line number")
	flags.BoolVarP(&cfg.NoFilename, "no-filename", "h", false, "never prefix lines with the source name")
	flags.BoolVarP(&cfg.WithFilename, "with-filename", "H", false, "always prefix lines with the source name")
	flags.BoolVarP(&cfg.NoMessages, "no-messages", "s", false, "suppress messages about unreadable sources")
	flags.BoolVarP(&cfg.OnlyMatching, "only-matching", "o", false, "print only the matched parts of lines")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print nothing, exit 0 on the first selected line")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "print results as JSON lines")

	flags.BoolVarP(&cfg.Recursive, "recursive", "r", false, "search directories recursively")
	flags.BoolVar(&cfg.Hidden, "hidden", false, "search hidden files and directories")
	flags.BoolVar(&cfg.NoIgnore, "no-ignore", false, "do not honour .gitignore files")
}
