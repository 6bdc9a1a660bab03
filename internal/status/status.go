// Package status computes per-file version control status by querying git
// and classifying its raw output.
package status

import "github.com/ImSingee/go-ex/ee"

// Status is the classified state of a single path.
//
// The zero value None means "no opinion": callers must skip it rather than
// overwrite a previously known status.
type Status uint8

const (
	None Status = iota
	UpToDate
	Modified
	Staged
	Unknown
	Added
	Deleted
	Unmerged
	Killed
)

var statusNames = [...]string{
	None:     "",
	UpToDate: "uptodate",
	Modified: "modified",
	Staged:   "staged",
	Unknown:  "unknown",
	Added:    "added",
	Deleted:  "deleted",
	Unmerged: "unmerged",
	Killed:   "killed",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "invalid"
}

func (s Status) MarshalText() ([]byte, error) {
	if int(s) >= len(statusNames) {
		return nil, ee.Errorf("invalid status %d", s)
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return ee.Errorf("unknown status %q", text)
}

// Classify maps a one letter code of the diff or listing output to its Status.
//
// The mapping does not depend on which query produced the letter.
// Unrecognized letters classify to None.
func Classify(letter byte) Status {
	switch letter {
	case 'H':
		return UpToDate
	case 'M', 'T':
		return Modified
	case '?':
		return Unknown
	case 'A':
		return Added
	case 'D':
		return Deleted
	case 'U':
		return Unmerged
	case 'K':
		return Killed
	default:
		return None
	}
}
