package walker

import (
	ignore "github.com/sabhiram/go-gitignore"
)

// Matcher excludes paths using gitignore syntax. Paths are matched relative
// to the walk root, with a trailing "/" for directories so that patterns
// like "build/" only match directories.
type Matcher struct {
	parser *ignore.GitIgnore
}

// NewMatcher compiles gitignore-style patterns. It returns nil when no
// patterns are given; a nil *Matcher excludes nothing.
func NewMatcher(patterns []string) *Matcher {
	if len(patterns) == 0 {
		return nil
	}
	return &Matcher{parser: ignore.CompileIgnoreLines(patterns...)}
}

// Excluded reports whether rel, a root-relative path, is excluded.
func (m *Matcher) Excluded(rel string, isDir bool) bool {
	if m == nil || m.parser == nil {
		return false
	}
	if isDir {
		rel += "/"
	}
	return m.parser.MatchesPath(rel)
}
