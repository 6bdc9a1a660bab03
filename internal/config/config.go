package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/exjson"
	"github.com/ysmood/gson"
	"gopkg.in/yaml.v3"

	"github.com/ImSingee/gitstat/internal/lib/shells"
)

var Debug bool

var ErrNotExist = os.ErrNotExist

func IsNotExist(err error) bool {
	return ee.Is(err, ErrNotExist)
}

var ConfigFileNames = []string{
	".gitstatrc",
	".gitstatrc.json",
	".gitstatrc.yaml",
	".gitstatrc.yml",
}

type Config struct {
	// Git is the command line of the repository tool
	Git []string
	// Compare is the tree the working tree is compared with
	Compare string
	// Untracked enables listing untracked files
	Untracked bool
	// Conflicts enables querying conflicted paths before refreshing (git diff cannot tell them apart)
	Conflicts bool
	// Ignore patterns (gitignore syntax) hide paths from output
	Ignore []string
}

func Default() *Config {
	return &Config{
		Git:       []string{"git"},
		Compare:   "HEAD",
		Untracked: true,
		Conflicts: true,
	}
}

// Find returns the first config file existing in dir, or "" if there is none
func Find(dir string) (string, error) {
	for _, name := range ConfigFileNames {
		filename := filepath.Join(dir, name)

		_, err := os.Stat(filename)
		if err == nil {
			return filename, nil
		}
		if !IsNotExist(err) {
			return "", ee.Wrapf(err, "cannot stat %s", filename)
		}
	}

	return "", nil
}

// Load reads the config file in dir over the defaults
func Load(dir string) (*Config, error) {
	c := Default()

	filename, err := Find(dir)
	if err != nil || filename == "" {
		return c, err
	}

	m, err := ReadConfigFile(filename)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot read config file %s", filename)
	}

	if err := c.Apply(m); err != nil {
		return nil, ee.Wrapf(err, "invalid config file %s", filename)
	}

	slog.Debug("Config loaded", "file", filename)

	return c, nil
}

// ReadConfigFile reads json (default) or yaml (by extension) config
func ReadConfigFile(filename string) (map[string]gson.JSON, error) {
	var obj map[string]any

	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &obj); err != nil {
			return nil, err
		}
	default:
		if err := exjson.Read(filename, &obj); err != nil {
			return nil, err
		}
	}

	return gson.New(obj).Map(), nil
}

func (c *Config) Apply(m map[string]gson.JSON) error {
	for key, v := range m {
		switch key {
		case "git":
			s, ok := v.Val().(string)
			if !ok {
				return ee.Errorf("invalid git config: must be a string")
			}
			args, err := shells.Split(s)
			if err != nil {
				return ee.Wrapf(err, "cannot parse git command `%s`", s)
			}
			if len(args) == 0 {
				return ee.Errorf("invalid git config: must not be empty")
			}
			c.Git = args
		case "compare":
			s, ok := v.Val().(string)
			if !ok || strings.TrimSpace(s) == "" {
				return ee.Errorf("invalid compare config: must be a non-empty string")
			}
			c.Compare = strings.TrimSpace(s)
		case "untracked":
			b, ok := v.Val().(bool)
			if !ok {
				return ee.Errorf("invalid untracked config: must be a boolean")
			}
			c.Untracked = b
		case "conflicts":
			b, ok := v.Val().(bool)
			if !ok {
				return ee.Errorf("invalid conflicts config: must be a boolean")
			}
			c.Conflicts = b
		case "ignore":
			patterns, err := stringList(v.Val())
			if err != nil {
				return ee.Wrap(err, "invalid ignore config")
			}
			c.Ignore = patterns
		default:
			slog.Debug("Unknown config key", "key", key)
		}
	}

	return nil
}

// stringList accepts a string or a string list
func stringList(v any) ([]string, error) {
	switch vv := v.(type) {
	case string:
		return []string{vv}, nil
	case []any:
		result := make([]string, 0, len(vv))
		for i, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, ee.Errorf("item %d must be a string", i+1)
			}
			result = append(result, s)
		}
		return result, nil
	default:
		return nil, ee.New("must be string or string list")
	}
}
