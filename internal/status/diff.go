package status

import (
	"log/slog"
	"strings"

	"github.com/ImSingee/go-ex/set"

	"github.com/ImSingee/gitstat/internal/lib/git"
)

// ParseRawDiff parses the output of
//
//	git diff -z --full-index --raw --abbrev=40 <tree> -- <path>...
//
// which is a list of
//
//	:<old mode> <new mode> <old hash> <new hash> <letter>\0<path>\0
//
// Paths in unmerged (may be nil) are always reported as Unmerged. Otherwise a
// modification whose new hash is not all zero is already in the index and is
// reported as Staged.
func ParseRawDiff(output []byte, unmerged *set.Set[string]) []*Record {
	fields := git.SplitZ(output)
	records := make([]*Record, 0, len(fields)/2)

	for i := 0; i < len(fields); i++ {
		header, ok := parseRawHeader(fields[i])
		if !ok {
			slog.Debug("Skip unexpected raw diff field", "field", fields[i])
			continue
		}

		// renames and copies report source and destination
		n := 1
		if header.letter == 'R' || header.letter == 'C' {
			n = 2
		}
		if i+n >= len(fields) {
			slog.Debug("Raw diff output is truncated", "field", fields[i])
			break
		}
		i += n

		name := fields[i]
		if name == "" {
			continue
		}

		records = append(records, &Record{
			Name:       name,
			Type:       Blob,
			Status:     diffStatus(name, header, unmerged),
			Permission: header.newPerm,
			Hash:       header.newHash,
		})
	}

	return records
}

type rawHeader struct {
	oldPerm, newPerm string
	oldHash, newHash string
	letter           byte
}

func parseRawHeader(s string) (rawHeader, bool) {
	if !strings.HasPrefix(s, ":") {
		return rawHeader{}, false
	}

	f := strings.Fields(s[1:])
	if len(f) != 5 || len(f[4]) == 0 {
		return rawHeader{}, false
	}

	return rawHeader{
		oldPerm: f[0],
		newPerm: f[1],
		oldHash: f[2],
		newHash: f[3],
		letter:  f[4][0], // R100 -> R
	}, true
}

func diffStatus(name string, h rawHeader, unmerged *set.Set[string]) Status {
	if unmerged != nil && unmerged.Has(name) {
		return Unmerged
	}

	s := Classify(h.letter)
	if s == Modified && !isZeroHash(h.newHash) {
		return Staged
	}

	return s
}

func isZeroHash(hash string) bool {
	return strings.Trim(hash, "0") == ""
}
