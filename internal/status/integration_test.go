package status

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImSingee/gitstat/internal/lib/git"
)

// countingGit counts the processes spawned by the wrapped runner
type countingGit struct {
	git.Runner
	calls int
}

func (c *countingGit) Run(args ...string) *git.Result {
	c.calls++
	return c.Runner.Run(args...)
}

func setupRepo(t *testing.T) (string, func(args ...string) *git.Result) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	root := t.TempDir()
	g := &git.G{
		Dir:  root,
		Args: []string{"-c", "user.email=test@test", "-c", "user.name=test", "-c", "commit.gpgsign=false"},
	}
	gitRun := func(args ...string) *git.Result {
		return g.Run(args...)
	}

	require.NoError(t, gitRun("init", "--quiet").Err())

	return root, gitRun
}

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()

	filename := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(filename), 0755))
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
}

func TestRealRepository(t *testing.T) {
	root, gitRun := setupRepo(t)

	for _, name := range []string{"clean.txt", "mod.txt", "staged.txt", "del.txt", "dir/inner.txt"} {
		writeFile(t, root, name, name+"\n")
	}
	require.NoError(t, gitRun("add", ".").Err())
	require.NoError(t, gitRun("commit", "--quiet", "-m", "init").Err())

	writeFile(t, root, "mod.txt", "changed\n")
	writeFile(t, root, "staged.txt", "changed\n")
	require.NoError(t, gitRun("add", "staged.txt").Err())
	require.NoError(t, os.Remove(filepath.Join(root, "del.txt")))
	writeFile(t, root, "new.txt", "new\n")
	require.NoError(t, gitRun("add", "new.txt").Err())
	writeFile(t, root, "untracked.txt", "?\n")
	writeFile(t, root, "newdir/f.txt", "?\n")

	counter := &countingGit{Runner: &git.G{Dir: root}}
	r := NewResolver(counter)

	t.Run("batch", func(t *testing.T) {
		counter.calls = 0

		m, err := r.BatchRefresh(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]Status{
			"clean.txt":     UpToDate,
			"mod.txt":       Modified,
			"staged.txt":    Staged,
			"del.txt":       Deleted,
			"new.txt":       Added,
			"dir/inner.txt": UpToDate,
			"untracked.txt": Unknown,
			"newdir":        Unknown,
		}, m)
		assert.Equal(t, 2, counter.calls)

		again, err := r.BatchRefresh(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, m, again)
	})

	t.Run("batch selected", func(t *testing.T) {
		counter.calls = 0

		m, err := r.BatchRefresh([]string{"mod.txt", "dir", "missing.txt"}, nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]Status{
			"mod.txt":       Modified,
			"dir/inner.txt": UpToDate,
		}, m)
		assert.Equal(t, 2, counter.calls)
	})

	t.Run("single", func(t *testing.T) {
		for name, expected := range map[string]Status{
			"clean.txt":     UpToDate,
			"mod.txt":       Modified,
			"staged.txt":    Staged,
			"untracked.txt": Unknown,
			"missing.txt":   None,
		} {
			s, err := r.QueryStatus(name, nil)
			require.NoError(t, err)
			assert.Equal(t, expected, s, name)
		}
	})

	t.Run("tree", func(t *testing.T) {
		records, err := r.Collect(nil, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"clean.txt", "del.txt", "dir/inner.txt", "mod.txt", "new.txt", "newdir", "staged.txt", "untracked.txt",
		}, names(OrderForDisplay(records)))
	})

	t.Run("bad compare target", func(t *testing.T) {
		_, err := (&Resolver{Git: &git.G{Dir: root}, CompareTarget: "no-such-branch"}).BatchRefresh(nil, nil)
		assert.True(t, git.IsProcessError(err))
	})
}

func TestRealConflict(t *testing.T) {
	root, gitRun := setupRepo(t)

	writeFile(t, root, "conflict.txt", "base\n")
	require.NoError(t, gitRun("add", ".").Err())
	require.NoError(t, gitRun("commit", "--quiet", "-m", "base").Err())

	require.NoError(t, gitRun("checkout", "--quiet", "-b", "other").Err())
	writeFile(t, root, "conflict.txt", "other\n")
	require.NoError(t, gitRun("commit", "--quiet", "-am", "other").Err())

	require.NoError(t, gitRun("checkout", "--quiet", "-").Err())
	writeFile(t, root, "conflict.txt", "mine\n")
	require.NoError(t, gitRun("commit", "--quiet", "-am", "mine").Err())

	require.Error(t, gitRun("merge", "--quiet", "other").Err())

	r := NewResolver(&git.G{Dir: root})

	unmerged, err := r.Unmerged(nil)
	require.NoError(t, err)
	assert.True(t, unmerged.Has("conflict.txt"))

	options := &BatchOptions{Unmerged: unmerged}

	m, err := r.BatchRefresh(nil, options)
	require.NoError(t, err)
	assert.Equal(t, map[string]Status{"conflict.txt": Unmerged}, m)

	m, err = r.BatchRefresh([]string{"conflict.txt"}, options)
	require.NoError(t, err)
	assert.Equal(t, map[string]Status{"conflict.txt": Unmerged}, m)

	s, err := r.QueryStatus("conflict.txt", options)
	require.NoError(t, err)
	assert.Equal(t, Unmerged, s)
}

func TestRealRename(t *testing.T) {
	root, gitRun := setupRepo(t)

	writeFile(t, root, "old.txt", "same content\n")
	writeFile(t, root, "keep.txt", "keep\n")
	require.NoError(t, gitRun("add", ".").Err())
	require.NoError(t, gitRun("commit", "--quiet", "-m", "init").Err())
	require.NoError(t, gitRun("mv", "old.txt", "new.txt").Err())

	// renames are detected unless the diff query turns it off
	g := &git.G{Dir: root, Args: []string{"-c", "diff.renames=true"}}
	r := NewResolver(g)

	m, err := r.BatchRefresh(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]Status{
		"old.txt":  Deleted,
		"new.txt":  Added,
		"keep.txt": UpToDate,
	}, m)

	for name, expected := range m {
		s, err := r.QueryStatus(name, nil)
		require.NoError(t, err)
		assert.Equal(t, expected, s, name)
	}

	selected, err := r.BatchRefresh([]string{"new.txt"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]Status{"new.txt": Added}, selected)
}
