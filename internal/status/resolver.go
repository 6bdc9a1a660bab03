package status

import (
	"path"
	"path/filepath"

	"github.com/ImSingee/go-ex/mr"
	"github.com/ImSingee/go-ex/set"

	"github.com/ImSingee/gitstat/internal/lib/git"
)

const DefaultCompareTarget = "HEAD"

var (
	// DefaultListFlags lists tracked and untracked files, collapsing untracked directories
	DefaultListFlags = []string{"-c", "-o", "--directory", "--exclude-standard"}
	// TrackedListFlags lists tracked files only
	TrackedListFlags = []string{"-c"}
)

// Resolver resolves status of repository paths.
//
// Git must run at the repository root: every name given to or returned by a
// Resolver is relative to it. A Resolver keeps no state between calls.
type Resolver struct {
	Git git.Runner

	// CompareTarget is the tree the working tree is compared with, DefaultCompareTarget if empty
	CompareTarget string
	// ListFlags are passed to the listing query, DefaultListFlags if nil
	ListFlags []string
}

func NewResolver(g git.Runner) *Resolver {
	return &Resolver{Git: g}
}

type BatchOptions struct {
	// Unmerged paths are reported as Unmerged whatever the diff query says
	Unmerged *set.Set[string]
}

func (r *Resolver) compareTarget() string {
	if r.CompareTarget == "" {
		return DefaultCompareTarget
	}
	return r.CompareTarget
}

func (r *Resolver) listFlags() []string {
	if r.ListFlags == nil {
		return DefaultListFlags
	}
	return r.ListFlags
}

func (r *Resolver) diff(names []string, unmerged *set.Set[string]) ([]*Record, error) {
	// without --no-renames a staged rename is a single R record of two paths,
	// while a query naming one side of it sees an addition or a deletion
	args := make([]string, 0, 8+len(names))
	args = append(args, "diff", "-z", "--full-index", "--raw", "--abbrev=40", "--no-renames", r.compareTarget(), "--")
	args = append(args, names...)

	result := r.Git.Run(args...)
	if err := result.Err(); err != nil {
		return nil, err
	}

	return ParseRawDiff(result.Output, unmerged), nil
}

func (r *Resolver) list(names []string) ([]*Record, error) {
	flags := r.listFlags()

	args := make([]string, 0, 4+len(flags)+len(names))
	args = append(args, "ls-files", "-t", "-z")
	args = append(args, flags...)
	args = append(args, "--")
	args = append(args, names...)

	result := r.Git.Run(args...)
	if err := result.Err(); err != nil {
		return nil, err
	}

	return ParseListing(result.Output), nil
}

// QueryStatus resolves a single path: the diff query first, the listing query
// if the diff has no opinion. None means nothing is known about name.
//
// options may be nil. A name in options.Unmerged is always Unmerged.
func (r *Resolver) QueryStatus(name string, options *BatchOptions) (Status, error) {
	if options == nil {
		options = &BatchOptions{}
	}
	name = normalizeName(name)

	if options.Unmerged != nil && options.Unmerged.Has(name) {
		return Unmerged, nil
	}

	records, err := r.diff([]string{name}, options.Unmerged)
	if err != nil {
		return None, err
	}
	if s := find(records, name); s != None {
		return s, nil
	}

	records, err = r.list([]string{name})
	if err != nil {
		return None, err
	}

	return find(records, name), nil
}

func find(records []*Record, name string) Status {
	for _, r := range records {
		if r.Name == name && r.Status != None {
			return r.Status
		}
	}
	return None
}

// Collect resolves names (everything below the root if names is empty)
// with at most two queries:
//
//  1. the diff query for all names
//  2. the listing query for the names the diff query has no opinion on
//
// Names resolved by neither query are absent from the result. Every returned
// record has a status and a unique name.
func (r *Resolver) Collect(names []string, options *BatchOptions) ([]*Record, error) {
	if options == nil {
		options = &BatchOptions{}
	}
	names = normalizeNames(names)

	b := newBatch(len(names))

	records, err := r.diff(names, options.Unmerged)
	if err != nil {
		return nil, err
	}
	b.add(records)

	var remaining []string
	if len(names) != 0 {
		remaining = mr.Filter(names, func(name string, _ int) bool {
			return !b.has(name)
		})
		if len(remaining) == 0 {
			return b.records, nil
		}
	}

	records, err = r.list(remaining)
	if err != nil {
		return nil, err
	}
	b.add(records)

	return b.records, nil
}

// BatchRefresh is Collect as a name to status mapping.
func (r *Resolver) BatchRefresh(names []string, options *BatchOptions) (map[string]Status, error) {
	records, err := r.Collect(names, options)
	if err != nil {
		return nil, err
	}

	return Statuses(records), nil
}

// Unmerged returns the conflicted paths among names (everything if names is empty).
func (r *Resolver) Unmerged(names []string) (*set.Set[string], error) {
	args := append([]string{"ls-files", "-u", "-z", "--"}, normalizeNames(names)...)

	result := r.Git.Run(args...)
	if err := result.Err(); err != nil {
		return nil, err
	}

	return ParseUnmerged(result.Output), nil
}

type batch struct {
	records []*Record
	index   map[string]int
}

func newBatch(size int) *batch {
	return &batch{
		records: make([]*Record, 0, size),
		index:   make(map[string]int, size),
	}
}

func (b *batch) has(name string) bool {
	_, ok := b.index[name]
	return ok
}

// add keeps the first status seen for a name, except that Unmerged always wins
func (b *batch) add(records []*Record) {
	for _, r := range records {
		if r.Status == None {
			continue
		}

		i, ok := b.index[r.Name]
		if !ok {
			b.index[r.Name] = len(b.records)
			b.records = append(b.records, r)
			continue
		}

		if r.Status == Unmerged {
			b.records[i] = r
		}
	}
}

func normalizeName(name string) string {
	return path.Clean(filepath.ToSlash(name))
}

// normalizeNames cleans names and drops duplicates, keeping the order
func normalizeNames(names []string) []string {
	seen := set.New[string]()

	result := make([]string, 0, len(names))
	for _, name := range names {
		name = normalizeName(name)
		if seen.Has(name) {
			continue
		}
		seen.Add(name)
		result = append(result, name)
	}

	return result
}
