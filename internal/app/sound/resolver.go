package sound

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"fanmenu/internal/config"
	"fanmenu/internal/menu"
)

// Resolver locates cue files in a directory by glob pattern.
// When fallback is enabled, cues without a file resolve to a synthesized tone.
type Resolver struct {
	dir      string
	patterns map[menu.Cue]glob.Glob
	fallback bool
}

// NewResolver creates a resolver from the sounds configuration
func NewResolver(cfg *config.Config) (*Resolver, error) {
	return NewResolverWithPatterns(cfg.Sounds.Dir, map[menu.Cue]string{
		menu.CueExpand: cfg.Sounds.Expand,
		menu.CueFold:   cfg.Sounds.Fold,
		menu.CueSelect: cfg.Sounds.Select,
	}, true)
}

// NewResolverWithPatterns compiles a pattern per cue; empty patterns never match
func NewResolverWithPatterns(dir string, patterns map[menu.Cue]string, fallback bool) (*Resolver, error) {
	r := &Resolver{
		dir:      dir,
		patterns: make(map[menu.Cue]glob.Glob, len(patterns)),
		fallback: fallback,
	}

	for cue, pattern := range patterns {
		if pattern == "" {
			continue
		}

		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		r.patterns[cue] = g
	}

	return r, nil
}

// Resolve returns the first matching file in name order
func (r *Resolver) Resolve(cue menu.Cue) (string, bool) {
	if path, ok := r.find(cue); ok {
		return path, true
	}

	if r.fallback {
		return ToneURI(cue), true
	}

	return "", false
}

func (r *Resolver) find(cue menu.Cue) (string, bool) {
	g, ok := r.patterns[cue]
	if !ok || r.dir == "" {
		return "", false
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return "", false
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if g.Match(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	if len(names) == 0 {
		return "", false
	}

	sort.Strings(names)

	return filepath.Join(r.dir, names[0]), true
}
