package glob

import (
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// Match matches the base name unless pattern contains a slash
func Match(pattern string, g glob.Glob, name string) bool {
	if strings.Contains(pattern, "/") {
		return match(g, name)
	} else {
		return match(g, path.Base(name))
	}
}

func match(g glob.Glob, target string) bool {
	return g.Match(target)
}

// Filter matches '/' separated repository names against one pattern
type Filter struct {
	pattern string
	g       glob.Glob
}

func NewFilter(pattern string) (*Filter, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, err
	}

	return &Filter{pattern: pattern, g: g}, nil
}

func (f *Filter) Match(name string) bool {
	if f == nil {
		return true
	}

	return Match(f.pattern, f.g, name)
}
