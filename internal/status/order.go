package status

import (
	"sort"
	"strings"
)

// Less orders records as a flattened directory tree.
//
// Everything below a directory is contiguous, and the directory record itself
// is placed right after its own contents, before its next sibling. Siblings
// (files and directories alike) are sorted by name, directories compared
// with their trailing slash.
func Less(a, b *Record) bool {
	ka, kb := a.dirKey(), b.dirKey()

	switch {
	case ka == kb:
		// a directory closes its own listing
		if a.IsDir() != b.IsDir() {
			return b.IsDir()
		}
		return a.Name < b.Name
	case strings.HasPrefix(kb, ka):
		if a.IsDir() { // a is an ancestor of b
			return false
		}
		return a.baseName() < nextComponent(kb, ka)
	case strings.HasPrefix(ka, kb):
		if b.IsDir() {
			return true
		}
		return nextComponent(ka, kb) < b.baseName()
	default:
		return ka < kb
	}
}

// nextComponent returns the first directory of key below prefix, with its trailing slash
func nextComponent(key, prefix string) string {
	rest := key[len(prefix):]
	return rest[:strings.IndexByte(rest, '/')+1]
}

// OrderForDisplay returns a sorted copy of records, see Less.
func OrderForDisplay(records []*Record) []*Record {
	ordered := make([]*Record, len(records))
	copy(ordered, records)

	sort.SliceStable(ordered, func(i, j int) bool {
		return Less(ordered[i], ordered[j])
	})

	return ordered
}
