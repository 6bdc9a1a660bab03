package git

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ImSingee/go-ex/ee"
)

// ExistingDir returns dir itself if it exists, or else its nearest existing ancestor.
//
// A working directory may vanish under us (e.g. a branch switch removed it),
// the walk stops at the filesystem root.
func ExistingDir(dir string) string {
	if dir == "" {
		return ""
	}

	for {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

// Root returns the top-level directory of the repository containing g.Dir
// (the process working directory if g.Dir is empty)
func (g *G) Root() (string, error) {
	dir := g.Dir
	if dir == "" {
		wd, err := WorkingDir()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	dir = ExistingDir(dir)

	result := g.At(dir).Run("rev-parse", "--show-cdup")
	if err := result.Err(); err != nil {
		return "", err
	}

	cdup := strings.TrimSpace(string(result.Output))

	return filepath.Clean(filepath.Join(dir, filepath.FromSlash(cdup))), nil
}

func GetRoot(dir string) (string, error) {
	return (&G{Dir: dir}).Root()
}

// WorkingDir is os.Getwd, falling back to $PWD once the directory is gone
func WorkingDir() (string, error) {
	wd, err := os.Getwd()
	if err == nil {
		return wd, nil
	}

	// getcwd fails once the directory is removed, $PWD still remembers it
	if pwd := os.Getenv("PWD"); filepath.IsAbs(pwd) {
		return pwd, nil
	}

	return "", ee.Wrap(err, "cannot get working directory")
}
