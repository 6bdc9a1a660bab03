package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("no config", func(t *testing.T) {
		c, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, Default(), c)
		assert.True(t, c.Conflicts, "conflicted paths are only told apart by the unmerged query")
	})

	t.Run("json", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitstatrc"), []byte(`{
  "git": "git -c core.quotepath=false",
  "compare": " main ",
  "untracked": false,
  "ignore": ["*.log", "vendor/"],
  "whatever": 1
}`), 0644))

		c, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, &Config{
			Git:       []string{"git", "-c", "core.quotepath=false"},
			Compare:   "main",
			Untracked: false,
			Conflicts: true,
			Ignore:    []string{"*.log", "vendor/"},
		}, c)
	})

	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitstatrc.yaml"), []byte(`
conflicts: false
ignore: "*.tmp"
`), 0644))

		c, err := Load(dir)
		require.NoError(t, err)
		assert.False(t, c.Conflicts)
		assert.True(t, c.Untracked)
		assert.Equal(t, []string{"*.tmp"}, c.Ignore)
	})

	t.Run("first name wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitstatrc.json"), []byte(`{"compare": "json"}`), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitstatrc.yml"), []byte(`compare: yaml`), 0644))

		c, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "json", c.Compare)
	})

	t.Run("invalid", func(t *testing.T) {
		for content, msg := range map[string]string{
			`{"untracked": "yes"}`: "untracked",
			`{"git": ""}`:          "git",
			`{"compare": 1}`:       "compare",
			`{"ignore": [1]}`:      "ignore",
			`{"ignore": true}`:     "ignore",
			`{`:                    ".gitstatrc",
		} {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitstatrc"), []byte(content), 0644))

			_, err := Load(dir)
			if assert.Error(t, err, content) {
				assert.Contains(t, err.Error(), msg)
			}
		}
	})
}
