package watcher

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher decides which changed paths under a watched root are reported
type Matcher interface {
	Match(path string) bool
	MatchDir(dirPath string) bool
}

type matcher struct {
	includes []glob.Glob
	ignores  []glob.Glob
}

// NewMatcher compiles include and ignore patterns; '/' separates path segments
func NewMatcher(includes, ignores []string) (Matcher, error) {
	inc, err := compileAll(includes)
	if err != nil {
		return nil, err
	}

	ign, err := compileAll(ignores)
	if err != nil {
		return nil, err
	}

	return &matcher{includes: inc, ignores: ign}, nil
}

func compileAll(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns)*2)

	for _, p := range patterns {
		variants := []string{p}

		// "**/x" also matches x at the root
		if rest, ok := strings.CutPrefix(p, "**/"); ok {
			variants = append(variants, rest)
		}

		for _, v := range variants {
			g, err := glob.Compile(v, '/')
			if err != nil {
				return nil, err
			}

			compiled = append(compiled, g)
		}
	}

	return compiled, nil
}

// Match reports whether the path is included and not ignored
func (m *matcher) Match(path string) bool {
	path = normalizePath(path)

	if matchAny(m.ignores, path) {
		return false
	}

	return matchAny(m.includes, path)
}

// MatchDir reports whether everything below a directory is ignored
func (m *matcher) MatchDir(dirPath string) bool {
	return matchAny(m.ignores, normalizePath(dirPath+"/_probe"))
}

func matchAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}

	return false
}

// normalizePath converts separators to '/' and drops a leading "./"
func normalizePath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}
