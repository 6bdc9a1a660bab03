package view

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ImSingee/gitstat/internal/status"
)

// Notify is called with the previous and the new status of a consumer
type Notify func(old, new status.Status)

// Registry keeps the last status delivered to each consumer (an open file, a row...).
//
// Several consumers may follow the same name.
type Registry struct {
	mu        sync.Mutex
	consumers map[string]*consumer
}

type consumer struct {
	name   string
	status status.Status
	notify Notify
}

func NewRegistry() *Registry {
	return &Registry{
		consumers: make(map[string]*consumer),
	}
}

// Register adds a consumer of name and returns its id
func (r *Registry) Register(name string, notify Notify) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.consumers[id] = &consumer{
		name:   name,
		notify: notify,
	}

	return id
}

func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.consumers, id)
}

// Status returns the last status delivered to the consumer
func (r *Registry) Status(id string) status.Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.consumers[id]; ok {
		return c.status
	}
	return status.None
}

// Names returns the distinct names followed by consumers
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(r.consumers))
	names := make([]string, 0, len(r.consumers))
	for _, c := range r.consumers {
		if !seen[c.name] {
			seen[c.name] = true
			names = append(names, c.name)
		}
	}
	return names
}

// Apply delivers a complete mapping: every consumer is updated (None if its
// name is absent) before any of them is notified, each exactly once.
func (r *Registry) Apply(m map[string]status.Status) {
	type delivery struct {
		notify   Notify
		old, new status.Status
	}

	r.mu.Lock()
	deliveries := make([]delivery, 0, len(r.consumers))
	for _, c := range r.consumers {
		old := c.status
		c.status = m[c.name]
		if c.notify != nil {
			deliveries = append(deliveries, delivery{c.notify, old, c.status})
		}
	}
	r.mu.Unlock()

	for _, d := range deliveries {
		d.notify(d.old, d.new)
	}
}
