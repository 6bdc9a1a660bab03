package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		result := (&G{Bin: "cat"}).RunInput("hello\x00world\x00")
		require.NoError(t, result.Err())
		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, []string{"hello", "world"}, SplitZ(result.Output))
	})

	t.Run("nonzero exit", func(t *testing.T) {
		result := (&G{Bin: "sh"}).Run("-c", "echo partial; echo '  fatal: boom  ' >&2; exit 3")
		assert.Equal(t, 3, result.ExitCode)

		err := result.Err()
		require.Error(t, err)
		assert.True(t, IsProcessError(err))

		var pe *ProcessError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "fatal: boom", pe.Output)
		assert.Equal(t, 3, pe.ExitCode)
		assert.Contains(t, pe.Error(), "fatal: boom")
	})

	t.Run("stdout as diagnostic", func(t *testing.T) {
		result := (&G{Bin: "sh"}).Run("-c", "echo only-stdout; exit 1")

		var pe *ProcessError
		require.ErrorAs(t, result.Err(), &pe)
		assert.Equal(t, "only-stdout", pe.Output)
	})

	t.Run("binary not found", func(t *testing.T) {
		result := (&G{Bin: "gitstat-no-such-binary"}).Run("status")
		assert.Equal(t, -1, result.ExitCode)
		assert.True(t, IsProcessError(result.Err()))
	})

	t.Run("prefix args", func(t *testing.T) {
		result := (&G{Bin: "echo", Args: []string{"-n", "a"}}).Run("b")
		require.NoError(t, result.Err())
		assert.Equal(t, "a b", string(result.Output))
		assert.Equal(t, []string{"echo", "-n", "a", "b"}, result.Args)
	})

	t.Run("vanished dir", func(t *testing.T) {
		dir := t.TempDir()
		result := (&G{Bin: "pwd", Dir: filepath.Join(dir, "gone")}).Run()
		require.NoError(t, result.Err())

		expected, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		actual, err := filepath.EvalSymlinks(string(trimNewline(result.Output)))
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

func TestExistingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0755))

	assert.Equal(t, "", ExistingDir(""))
	assert.Equal(t, filepath.Join(dir, "a", "b"), ExistingDir(filepath.Join(dir, "a", "b")))
	assert.Equal(t, filepath.Join(dir, "a"), ExistingDir(filepath.Join(dir, "a", "x", "y", "z")))
	assert.Equal(t, dir, ExistingDir(filepath.Join(dir, "gone")))

	t.Run("file is not a directory", func(t *testing.T) {
		f := filepath.Join(dir, "a", "file")
		require.NoError(t, os.WriteFile(f, nil, 0644))
		assert.Equal(t, filepath.Join(dir, "a"), ExistingDir(f))
	})
}

func TestSplitZ(t *testing.T) {
	assert.Nil(t, SplitZ(nil))
	assert.Nil(t, SplitZ([]byte("")))
	assert.Nil(t, SplitZ([]byte("\x00")))
	assert.Equal(t, []string{" a b "}, SplitZ([]byte(" a b \x00")))
	assert.Equal(t, []string{"a", "b"}, SplitZ([]byte("a\x00b")))
}

func TestParseVersion(t *testing.T) {
	for _, c := range []struct {
		output   string
		expected string
	}{
		{"git version 2.39.3 (Apple Git-146)\n", "2.39.3"},
		{"git version 2.42.0.windows.2", "2.42.0"},
		{"git version 1.7.1", "1.7.1"},
	} {
		t.Run(c.output, func(t *testing.T) {
			v, err := parseVersion(c.output)
			require.NoError(t, err)
			assert.Equal(t, c.expected, v.String())
			assert.True(t, IsSupportedVersion(v))
		})
	}

	t.Run("too old", func(t *testing.T) {
		v, err := parseVersion("git version 1.6.6")
		require.NoError(t, err)
		assert.False(t, IsSupportedVersion(v))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := parseVersion("hello")
		assert.Error(t, err)
	})
}
