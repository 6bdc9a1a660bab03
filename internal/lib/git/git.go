package git

import (
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/ImSingee/gitstat/internal/lib/shells"
)

const defaultBin = "git"

// Runner spawns the repository tool once per call.
type Runner interface {
	Run(args ...string) *Result
}

type G struct {
	Dir string
	Env []string

	// Bin is the tool executable, "git" if empty
	Bin string
	// Args are put in front of every invocation (e.g. -c core.quotepath=false)
	Args []string
}

type Result struct {
	Args   []string
	Output []byte

	ExitCode   int
	ExitErr    *exec.ExitError
	UnknownErr error
}

// Err returns a *ProcessError if the tool exited nonzero or could not be started.
func (r *Result) Err() error {
	if r.ExitErr == nil && r.UnknownErr == nil {
		return nil
	}

	e := &ProcessError{
		Args:     r.Args,
		ExitCode: r.ExitCode,
	}

	switch {
	case r.ExitErr != nil:
		e.Output = strings.TrimSpace(string(r.ExitErr.Stderr))
		if e.Output == "" {
			e.Output = strings.TrimSpace(string(r.Output))
		}
	case r.UnknownErr != nil:
		e.Output = r.UnknownErr.Error()
	}

	return e
}

// At returns a copy of g running inside dir.
func (g *G) At(dir string) *G {
	c := *g
	c.Dir = dir
	return &c
}

func (g *G) Run(args ...string) *Result {
	return g.run(nil, args)
}

// RunInput is like Run but feeds input to the process stdin.
func (g *G) RunInput(input string, args ...string) *Result {
	return g.run(strings.NewReader(input), args)
}

func (g *G) bin() string {
	if g.Bin == "" {
		return defaultBin
	}
	return g.Bin
}

func (g *G) run(stdin io.Reader, args []string) *Result {
	argv := make([]string, 0, len(g.Args)+len(args))
	argv = append(argv, g.Args...)
	argv = append(argv, args...)

	cmd := exec.Command(g.bin(), argv...)
	cmd.Dir = ExistingDir(g.Dir)
	cmd.Env = g.Env
	cmd.Stdin = stdin
	output, err := cmd.Output()

	result := &Result{
		Args:   append([]string{g.bin()}, argv...),
		Output: output,
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			result.ExitErr = exitErr
		} else {
			result.ExitCode = -1
			result.UnknownErr = err
		}
	}

	slog.Debug("Run git", "dir", cmd.Dir, "cmd", shells.Join(result.Args), "exitCode", result.ExitCode, "outputSize", len(output))

	return result
}
