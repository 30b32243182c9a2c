package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Stdin is the argument that selects standard input.
const Stdin = "-"

// DefaultPatterns are applied inside directory arguments.
var DefaultPatterns = []string{"**/*.lisp"}

// Result is the outcome of expanding command-line inputs.
type Result struct {
	// Files in argument order, deduplicated. Literal paths are kept even
	// when they do not exist so the scorer can report them.
	Files []string
	// Patterns that matched nothing.
	Unmatched []string
}

// FileDiscovery expands file, directory and glob arguments.
type FileDiscovery struct {
	patterns []string
}

// NewFileDiscovery creates a FileDiscovery. With no patterns, DefaultPatterns
// are used for directories.
func NewFileDiscovery(patterns ...string) *FileDiscovery {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &FileDiscovery{patterns: patterns}
}

// Expand resolves each argument in order:
//   - "-" is kept as stdin
//   - directories expand to files matching the discovery patterns
//   - existing files are taken literally, even when the name has glob syntax
//   - glob patterns (doublestar syntax, e.g. out/**/*.lisp) expand to their
//     sorted matches; a pattern without * or ? that matches nothing is kept
//     as a literal path
//   - anything else is taken literally
func (fd *FileDiscovery) Expand(args []string) (Result, error) {
	var res Result
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			res.Files = append(res.Files, path)
		}
	}

	for _, arg := range args {
		if arg == Stdin {
			add(arg)
			continue
		}

		info, statErr := os.Stat(arg)
		switch {
		case statErr == nil && info.IsDir():
			matches, err := fd.findFilesByPattern(arg)
			if err != nil {
				return Result{}, err
			}
			if len(matches) == 0 {
				res.Unmatched = append(res.Unmatched, arg)
				continue
			}
			for _, m := range matches {
				add(m)
			}

		case statErr == nil || !IsPattern(arg):
			// Existing paths win over glob syntax: out/[draft].lisp is a file.
			add(arg)

		default:
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil || len(matches) == 0 {
				// No * or ?: treat out/[v2].lisp as a path the scorer reports.
				if !hasWildcard(arg) {
					add(arg)
					continue
				}
				if err != nil {
					return Result{}, fmt.Errorf("invalid pattern %q: %w", arg, err)
				}
				res.Unmatched = append(res.Unmatched, arg)
				continue
			}
			sort.Strings(matches)
			for _, m := range matches {
				add(m)
			}
		}
	}

	return res, nil
}

// findFilesByPattern globs a directory with every discovery pattern.
func (fd *FileDiscovery) findFilesByPattern(dir string) ([]string, error) {
	var files []string
	fsys := os.DirFS(dir)
	for _, pattern := range fd.patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("error globbing %s in %s: %w", pattern, dir, err)
		}
		for _, m := range matches {
			files = append(files, filepath.Join(dir, filepath.FromSlash(m)))
		}
	}
	sort.Strings(files)
	return files, nil
}

// IsPattern reports whether the argument contains glob metacharacters.
func IsPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

func hasWildcard(arg string) bool {
	return strings.ContainsAny(arg, "*?")
}
