package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// configPath returns $LINEGREP_CONFIG_PATH, or ~/.linegrep when it is unset.
// It returns "" if neither can be determined.
func configPath() string {
	if path := os.Getenv("LINEGREP_CONFIG_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linegrep")
}

// LoadConfigArgs returns the arguments stored in the config file, or nil if
// there is no readable config file.
func LoadConfigArgs() []string {
	path := configPath()
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return parseConfigArgs(string(data))
}

// parseConfigArgs splits config file contents into arguments. Each line is
// one flag, optionally followed by whitespace and its value, which is taken
// verbatim up to the end of the line. Blank lines and # comments are skipped.
func parseConfigArgs(data string) []string {
	var args []string
	for line := range strings.Lines(data) {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		i := strings.IndexAny(line, " \t")
		if i < 0 || strings.Contains(line[:i], "=") {
			args = append(args, line)
			continue
		}
		args = append(args, line[:i], strings.TrimSpace(line[i:]))
	}
	return args
}
