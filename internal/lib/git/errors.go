package git

import (
	"errors"
	"fmt"

	"github.com/ImSingee/gitstat/internal/lib/shells"
)

// ProcessError reports that the tool exited nonzero (or could not be started, ExitCode = -1).
//
// Output is the trimmed diagnostic text of the tool.
type ProcessError struct {
	Args     []string
	ExitCode int
	Output   string
}

func (e *ProcessError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("`%s` failed with exit code %d", shells.Join(e.Args), e.ExitCode)
	}

	return fmt.Sprintf("`%s` failed with exit code %d: %s", shells.Join(e.Args), e.ExitCode, e.Output)
}

func IsProcessError(err error) bool {
	var pe *ProcessError
	return errors.As(err, &pe)
}
