package git

import (
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/semver"
)

// MinimumVersion is the oldest git known to understand all queries we issue
const MinimumVersion = "1.7.0"

func (g *G) Version() (*semver.Version, error) {
	result := g.Run("version")
	if err := result.Err(); err != nil {
		return nil, err
	}

	return parseVersion(string(result.Output))
}

// parseVersion parses outputs like
//
//	git version 2.39.3 (Apple Git-146)
//	git version 2.42.0.windows.2
func parseVersion(output string) (*semver.Version, error) {
	fields := strings.Fields(output)
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return nil, ee.Errorf("unexpected version output: %s", strings.TrimSpace(output))
	}

	parts := strings.SplitN(fields[2], ".", 4)
	if len(parts) > 3 {
		parts = parts[:3]
	}

	v, err := semver.NewVersion(strings.Join(parts, "."))
	if err != nil {
		return nil, ee.Wrapf(err, "cannot parse git version %s", fields[2])
	}

	return v, nil
}

func IsSupportedVersion(v *semver.Version) bool {
	minimum, err := semver.NewVersion(MinimumVersion)
	if err != nil {
		panic(err)
	}

	return !v.LessThan(minimum)
}
