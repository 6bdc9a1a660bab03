package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

type Matcher = gitignore.Matcher
type Pattern = gitignore.Pattern

const (
	commentPrefix = "#"

	// FileName is the ignore file read at the repository root
	FileName = ".gitstatignore"
)

func NewMatcher(ps []Pattern) Matcher {
	return gitignore.NewMatcher(ps)
}

// ParsePatterns parses gitignore style lines relative to the repository root
func ParsePatterns(lines []string) []Pattern {
	ps := make([]Pattern, 0, len(lines))
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" || strings.HasPrefix(s, commentPrefix) {
			continue
		}

		ps = append(ps, gitignore.ParsePattern(s, nil))
	}
	return ps
}

// ReadPatterns reads ignoreFileNames in root, missing files are skipped
//
// The result is in the ascending order of priority (last higher).
func ReadPatterns(root string, ignoreFileNames ...string) ([]Pattern, error) {
	var ps []Pattern

	for _, ignoreFile := range ignoreFileNames {
		lines, err := readLines(filepath.Join(root, ignoreFile))
		if err != nil {
			return nil, err
		}

		ps = append(ps, ParsePatterns(lines)...)
	}

	return ps, nil
}

func readLines(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

// Match reports whether the '/' separated name is ignored
func Match(m Matcher, name string, isDir bool) bool {
	if m == nil {
		return false
	}

	return m.Match(strings.Split(name, "/"), isDir)
}
