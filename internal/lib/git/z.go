package git

import "strings"

// SplitZ splits the NUL separated output of a `-z` query.
//
// Unlike line based output, records are never trimmed: paths may carry spaces.
func SplitZ(output []byte) []string {
	o := strings.TrimSuffix(string(output), "\x00")
	if o == "" {
		return nil
	}

	return strings.Split(o, "\x00")
}
