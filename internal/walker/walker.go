package walker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrIsDirectory is reported for a directory argument when recursion is off.
var ErrIsDirectory = errors.New("is a directory")

// Options configures path expansion.
type Options struct {
	Recursive bool
	NoIgnore  bool // skip .gitignore processing
	Hidden    bool // include hidden files and directories
}

// WalkError represents an error during directory traversal.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// Expand calls fn for each source path named by roots, in order.
// Plain paths (including "-") are passed through untouched so that the caller
// reports open failures itself. With Recursive, directories are walked in
// lexical order, skipping VCS and hidden entries and anything a .gitignore
// excludes; only regular files are yielded. Traversal problems reach fn as a
// non-nil *WalkError. If fn returns fs.SkipAll, Expand stops and returns nil;
// any other error from fn is returned as is.
func Expand(roots []string, opts Options, fn func(path string, err error) error) error {
	for _, root := range roots {
		err := expandRoot(root, opts, fn)
		if errors.Is(err, fs.SkipAll) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func expandRoot(root string, opts Options, fn func(string, error) error) error {
	if root == "-" {
		return fn(root, nil)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fn(root, nil)
	}
	if !opts.Recursive {
		return fn(root, &WalkError{Path: root, Err: ErrIsDirectory})
	}

	var rules *ignoreRules
	if !opts.NoIgnore {
		rules = &ignoreRules{}
	}
	// WalkDir swallows fs.SkipAll, so remember why fn stopped the walk.
	var stop error
	call := func(path string, err error) error {
		if cbErr := fn(path, err); cbErr != nil {
			stop = cbErr
			return cbErr
		}
		return nil
	}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if cbErr := call(path, &WalkError{Path: path, Err: err}); cbErr != nil {
				return cbErr
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if rules != nil {
			rules.unwind(filepath.Dir(path))
		}
		if path != root {
			if d.IsDir() && skipDir(d.Name(), opts.Hidden) {
				return filepath.SkipDir
			}
			if !d.IsDir() && !opts.Hidden && strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			if rules != nil && rules.excludes(path, d.IsDir()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			if rules != nil {
				rules.enter(path)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return call(path, nil)
	})
	if stop != nil {
		return stop
	}
	return err
}

// skipDir returns true for directories that should be skipped.
// VCS directories (.git, .svn, .hg) are always skipped.
// Other hidden directories are skipped unless hidden is true.
func skipDir(name string, hidden bool) bool {
	switch name {
	case ".git", ".svn", ".hg":
		return true
	}
	if !hidden && len(name) > 0 && name[0] == '.' {
		return true
	}
	return false
}
