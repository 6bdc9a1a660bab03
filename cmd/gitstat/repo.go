package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/spf13/cobra"

	"github.com/ImSingee/gitstat/internal/config"
	"github.com/ImSingee/gitstat/internal/lib/git"
	"github.com/ImSingee/gitstat/internal/lib/glob"
	"github.com/ImSingee/gitstat/internal/lib/ignore"
	"github.com/ImSingee/gitstat/internal/lib/shells"
	"github.com/ImSingee/gitstat/internal/status"
)

// repo is the repository a command works on, with config and flags applied
type repo struct {
	wd     string
	root   string
	config *config.Config

	resolver *status.Resolver
	ignore   ignore.Matcher
}

// gitEnv keeps our queries from rewriting the index (and waking up watchers)
func gitEnv() []string {
	return append(os.Environ(), "GIT_OPTIONAL_LOCKS=0")
}

// gitFromFlags returns the git command line given by --git, nil if not set
func gitFromFlags(cmd *cobra.Command) ([]string, error) {
	s, _ := cmd.Flags().GetString("git")
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	args, err := shells.Split(s)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot parse --git `%s`", s)
	}
	return args, nil
}

func newGit(dir string, command []string) *git.G {
	return &git.G{
		Dir:  dir,
		Env:  gitEnv(),
		Bin:  command[0],
		Args: command[1:],
	}
}

func openRepo(cmd *cobra.Command) (*repo, error) {
	wd, err := git.WorkingDir()
	if err != nil {
		return nil, err
	}

	command, err := gitFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	if command == nil {
		command = config.Default().Git
	}

	root, err := newGit(wd, command).Root()
	if err != nil {
		return nil, ee.Wrap(err, "cannot find repository root")
	}

	c, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, c); err != nil {
		return nil, err
	}

	// the config file may name a wrapper of git, which must agree on the root
	if !slices.Equal(c.Git, command) {
		configured, err := newGit(wd, c.Git).Root()
		if err != nil {
			return nil, ee.Wrap(err, "cannot find repository root")
		}
		if configured != root {
			return nil, ee.Errorf("`%s` locates repository %s instead of %s", shells.Join(c.Git), configured, root)
		}
	}

	listFlags := status.DefaultListFlags
	if !c.Untracked {
		listFlags = status.TrackedListFlags
	}

	patterns, err := ignore.ReadPatterns(root, ignore.FileName)
	if err != nil {
		return nil, ee.Wrap(err, "cannot read ignore patterns")
	}
	patterns = append(patterns, ignore.ParsePatterns(c.Ignore)...)

	return &repo{
		wd:     wd,
		root:   root,
		config: c,
		resolver: &status.Resolver{
			Git:           newGit(root, c.Git),
			CompareTarget: c.Compare,
			ListFlags:     listFlags,
		},
		ignore: ignore.NewMatcher(patterns),
	}, nil
}

func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()

	command, err := gitFromFlags(cmd)
	if err != nil {
		return err
	}
	if command != nil {
		c.Git = command
	}
	if flags.Changed("compare") {
		c.Compare, _ = flags.GetString("compare")
	}
	if flags.Changed("untracked") {
		c.Untracked, _ = flags.GetBool("untracked")
	}
	if flags.Changed("conflicts") {
		c.Conflicts, _ = flags.GetBool("conflicts")
	}

	return nil
}

// names converts arguments relative to the working directory into repository names
func (r *repo) names(args []string) ([]string, error) {
	names := make([]string, 0, len(args))

	for _, arg := range args {
		p := arg
		if !filepath.IsAbs(p) {
			p = filepath.Join(r.wd, p)
		}

		rel, err := filepath.Rel(r.root, p)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil, ee.Errorf("%s is outside repository %s", arg, r.root)
		}

		names = append(names, filepath.ToSlash(rel))
	}

	return names, nil
}

func (r *repo) batchOptions(names []string) (*status.BatchOptions, error) {
	options := &status.BatchOptions{}
	if !r.config.Conflicts {
		return options, nil
	}

	unmerged, err := r.resolver.Unmerged(names)
	if err != nil {
		return nil, err
	}
	options.Unmerged = unmerged

	return options, nil
}

// collect resolves names and drops what is ignored or not matched by only
func (r *repo) collect(names []string, only *glob.Filter) ([]*status.Record, error) {
	options, err := r.batchOptions(names)
	if err != nil {
		return nil, err
	}

	records, err := r.resolver.Collect(names, options)
	if err != nil {
		return nil, err
	}

	visible := make([]*status.Record, 0, len(records))
	for _, record := range records {
		if ignore.Match(r.ignore, record.Name, record.IsDir()) || !only.Match(record.Name) {
			continue
		}
		visible = append(visible, record)
	}

	return visible, nil
}

func onlyFilter(cmd *cobra.Command) (*glob.Filter, error) {
	pattern, _ := cmd.Flags().GetString("only")
	if pattern == "" {
		return nil, nil
	}

	f, err := glob.NewFilter(pattern)
	if err != nil {
		return nil, ee.Wrapf(err, "invalid --only pattern `%s`", pattern)
	}
	return f, nil
}
