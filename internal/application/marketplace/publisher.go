package marketplace

import (
	"context"
	"sort"

	"vastgoed-sync/internal/application/listings"
	"vastgoed-sync/internal/domain"
)

const (
	NameImmovlan = "immovlan"
	NameSpotto   = "spotto"
)

// Result is what the marketplace answered.
type Result struct {
	Status int
	Body   string
}

// Publisher pushes listings to one external marketplace.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, l *domain.Listing) (Result, error)
	Suspend(ctx context.Context, id string) (Result, error)
}

// Registry holds the configured publishers by name.
type Registry struct {
	publishers map[string]Publisher
}

func NewRegistry(ps ...Publisher) *Registry {
	r := &Registry{publishers: make(map[string]Publisher, len(ps))}
	for _, p := range ps {
		r.publishers[p.Name()] = p
	}
	return r
}

func (r *Registry) Get(name string) (Publisher, bool) {
	p, ok := r.publishers[name]
	return p, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.publishers))
	for n := range r.publishers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// FlagFor returns the pending-upload flag of a marketplace.
func FlagFor(name string) (listings.Flag, bool) {
	switch name {
	case NameImmovlan:
		return listings.FlagImmovlan, true
	case NameSpotto:
		return listings.FlagSpotto, true
	}
	return "", false
}
