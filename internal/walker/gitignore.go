package walker

import (
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreRules holds the .gitignore rules in force for the directory being
// walked, outermost directory first.
type ignoreRules struct {
	scopes []ignoreScope
}

// ignoreScope is one directory on the walk path. rules is nil when the
// directory has no readable .gitignore; the scope is kept anyway so that
// unwinding stays a matter of comparing paths.
type ignoreScope struct {
	dir   string
	rules *ignore.GitIgnore
}

// enter descends into dir, loading its .gitignore.
func (r *ignoreRules) enter(dir string) {
	dir = filepath.Clean(dir)
	rules, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		rules = nil
	}
	r.scopes = append(r.scopes, ignoreScope{dir: dir, rules: rules})
}

// unwind drops the scopes of directories that dir is not inside.
// WalkDir gives no notice when it finishes a directory, so the walk calls
// unwind with the parent of every entry it visits.
func (r *ignoreRules) unwind(dir string) {
	for n := len(r.scopes); n > 0; n = len(r.scopes) {
		if within(dir, r.scopes[n-1].dir) {
			return
		}
		r.scopes = r.scopes[:n-1]
	}
}

// within reports whether dir is top or lies below it. Both are clean paths.
func within(dir, top string) bool {
	const sep = string(filepath.Separator)
	switch {
	case dir == top:
		return true
	case top == ".":
		return !filepath.IsAbs(dir) && dir != ".." && !strings.HasPrefix(dir, ".."+sep)
	case strings.HasSuffix(top, sep):
		return strings.HasPrefix(dir, top)
	}
	return strings.HasPrefix(dir, top+sep)
}

// excludes reports whether a rule of any open scope matches path. Each rule
// set sees path relative to the directory holding it; directories carry a
// trailing slash so that "name/" rules apply to them only.
func (r *ignoreRules) excludes(path string, isDir bool) bool {
	for _, sc := range r.scopes {
		if sc.rules == nil {
			continue
		}
		rel, err := filepath.Rel(sc.dir, path)
		if err != nil {
			continue
		}
		if isDir {
			rel += "/"
		}
		if sc.rules.MatchesPath(rel) {
			return true
		}
	}
	return false
}
