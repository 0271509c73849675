package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dl/linegrep/internal/matcher"
	"github.com/dl/linegrep/internal/output"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"sometimes", ColorAuto, true},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"pattern", Config{Patterns: []string{"a"}}, false},
		{"pattern file", Config{PatternFiles: []string{"p.txt"}}, false},
		{"no pattern", Config{}, true},
		{"extended and perl", Config{Patterns: []string{"a"}, Extended: true, PCRE: true}, true},
		{"fixed and perl", Config{Patterns: []string{"a"}, Fixed: true, PCRE: true}, true},
		{"fixed and extended", Config{Patterns: []string{"a"}, Fixed: true, Extended: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_MatchOptions(t *testing.T) {
	tests := []struct {
		cfg  Config
		want matcher.Syntax
	}{
		{Config{}, matcher.SyntaxBasic},
		{Config{Extended: true}, matcher.SyntaxExtended},
		{Config{Fixed: true}, matcher.SyntaxFixed},
		{Config{PCRE: true}, matcher.SyntaxPerl},
	}
	for _, tt := range tests {
		if got := tt.cfg.MatchOptions().Syntax; got != tt.want {
			t.Errorf("%+v: syntax = %v, want %v", tt.cfg, got, tt.want)
		}
	}
	if !(&Config{IgnoreCase: true}).MatchOptions().IgnoreCase {
		t.Error("IgnoreCase not carried into match options")
	}
}

func TestConfig_OutputMode(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		color bool
		want  output.Mode
	}{
		{"default", Config{}, false, output.ModePlain},
		{"color", Config{}, true, output.ModeHighlight},
		{"only matching", Config{OnlyMatching: true}, true, output.ModeMatchesOnly},
		{"invert beats only matching", Config{Invert: true, OnlyMatching: true}, true, output.ModePlain},
		{"count", Config{CountOnly: true, OnlyMatching: true}, false, output.ModeCount},
		{"list beats count", Config{CountOnly: true, FileNamesOnly: true}, false, output.ModeListSources},
		{"quiet beats all", Config{Quiet: true, FileNamesOnly: true, CountOnly: true}, true, output.ModeQuiet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.OutputMode(tt.color); got != tt.want {
				t.Errorf("OutputMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_ShowSource(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		sources int
		want    bool
	}{
		{"single", Config{}, 1, false},
		{"several", Config{}, 2, true},
		{"forced", Config{WithFilename: true}, 1, true},
		{"suppressed", Config{NoFilename: true}, 3, false},
		{"suppressed beats forced", Config{NoFilename: true, WithFilename: true}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.OutputOptions(false, tt.sources).ShowSource; got != tt.want {
				t.Errorf("ShowSource = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_CommandLinePatterns(t *testing.T) {
	cfg := Config{Patterns: []string{"foo\nbar", "baz"}}
	want := []string{"foo", "bar", "baz"}
	if got := cfg.CommandLinePatterns(); !reflect.DeepEqual(got, want) {
		t.Errorf("CommandLinePatterns() = %q, want %q", got, want)
	}
}

func TestLoadConfigArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linegreprc")
	content := "# defaults\n--color=never\n\n  -n  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LINEGREP_CONFIG_PATH", path)

	want := []string{"--color=never", "-n"}
	if got := LoadConfigArgs(); !reflect.DeepEqual(got, want) {
		t.Errorf("LoadConfigArgs() = %q, want %q", got, want)
	}
}

func TestLoadConfigArgs_Missing(t *testing.T) {
	t.Setenv("LINEGREP_CONFIG_PATH", filepath.Join(t.TempDir(), "absent"))
	if got := LoadConfigArgs(); got != nil {
		t.Errorf("LoadConfigArgs() = %q, want nil", got)
	}
}

func TestParseConfigArgs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"comments and blanks", "# c\n\n   \n", nil},
		{"bare flags", "-n\n--hidden\n", []string{"-n", "--hidden"}},
		{"inline value", "--color=never", []string{"--color=never"}},
		{"separate value", "-e  foo bar\n", []string{"-e", "foo bar"}},
		{"tab value", "--file\tpatterns.txt", []string{"--file", "patterns.txt"}},
		{"crlf", "-i\r\n-n\r\n", []string{"-i", "-n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseConfigArgs(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseConfigArgs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
