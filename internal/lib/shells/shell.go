package shells

import (
	"github.com/alessio/shellescape"
	"github.com/google/shlex"
)

// Join renders argv as a copy-pasteable command line
func Join(cmdAndArgs []string) string {
	return shellescape.QuoteCommand(cmdAndArgs)
}

func Split(cmd string) ([]string, error) {
	return shlex.Split(cmd)
}
