package view

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ImSingee/gitstat/internal/status"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	var events []string
	record := func(name string) Notify {
		return func(old, new status.Status) {
			// every consumer is already updated when the first one is notified
			events = append(events, name+":"+old.String()+"->"+new.String())
		}
	}

	a := r.Register("a.txt", record("a"))
	b := r.Register("b.txt", record("b"))
	a2 := r.Register("a.txt", nil)
	assert.NotEqual(t, a, a2)

	names := r.Names()
	sort.Strings(names)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)

	r.Apply(map[string]status.Status{"a.txt": status.Modified, "b.txt": status.Unknown, "c.txt": status.Added})
	assert.Equal(t, status.Modified, r.Status(a))
	assert.Equal(t, status.Modified, r.Status(a2))
	assert.Equal(t, status.Unknown, r.Status(b))
	sort.Strings(events)
	assert.Equal(t, []string{"a:->modified", "b:->unknown"}, events)

	events = nil
	r.Apply(map[string]status.Status{"a.txt": status.Staged})
	assert.Equal(t, status.Staged, r.Status(a))
	assert.Equal(t, status.None, r.Status(b))
	sort.Strings(events)
	assert.Equal(t, []string{"a:modified->staged", "b:unknown->"}, events)

	r.Unregister(b)
	assert.Equal(t, status.None, r.Status(b))
	assert.Equal(t, []string{"a.txt"}, r.Names())
}

func TestApplyBeforeNotify(t *testing.T) {
	r := NewRegistry()

	var a, b string
	var seen status.Status
	a = r.Register("a", func(_, _ status.Status) {
		seen = r.Status(b)
	})
	b = r.Register("b", nil)
	_ = a

	r.Apply(map[string]status.Status{"a": status.Modified, "b": status.Added})
	assert.Equal(t, status.Added, seen)
}

func TestDecorators(t *testing.T) {
	assert.Equal(t, "M", Letters(status.Modified))
	assert.Equal(t, "S", Letters(status.Staged))
	assert.Equal(t, "-", Letters(status.None))
	assert.Equal(t, "unmerged", Names(status.Unmerged))
	assert.Equal(t, "-", Names(status.None))

	colored := Colored(Letters)
	assert.Contains(t, colored(status.Deleted), "D")
	assert.Equal(t, " ", colored(status.UpToDate))
}
