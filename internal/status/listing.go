package status

import (
	"log/slog"
	"strings"

	"github.com/ImSingee/go-ex/set"

	"github.com/ImSingee/gitstat/internal/lib/git"
)

// ParseListing parses the output of
//
//	git ls-files -t -z <flags> -- <path>...
//
// Every record is a one letter tag, a separator and the path. Paths reported
// with a trailing slash (untracked directories, nested repositories) become
// Tree records.
func ParseListing(output []byte) []*Record {
	lines := git.SplitZ(output)
	records := make([]*Record, 0, len(lines))

	for _, line := range lines {
		if len(line) < 3 || (line[1] != '\t' && line[1] != ' ') {
			slog.Debug("Skip unexpected listing record", "record", line)
			continue
		}

		name := line[2:]
		typ := Blob
		if stripped := strings.TrimSuffix(name, "/"); stripped != name {
			name = stripped
			typ = Tree
		}

		records = append(records, &Record{
			Name:   name,
			Type:   typ,
			Status: Classify(line[0]),
		})
	}

	return records
}

// ParseUnmerged parses the output of
//
//	git ls-files -u -z -- <path>...
//
// (`<mode> <hash> <stage>\t<path>` records, one per conflict stage) into the
// set of conflicted paths.
func ParseUnmerged(output []byte) *set.Set[string] {
	paths := set.New[string]()

	for _, line := range git.SplitZ(output) {
		_, name, ok := strings.Cut(line, "\t")
		if !ok || name == "" {
			slog.Debug("Skip unexpected unmerged record", "record", line)
			continue
		}
		paths.Add(name)
	}

	return paths
}
