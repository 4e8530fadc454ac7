package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/bannerkit/pkg/errors"
)

// Ranked is an item that knows its registry key and its rank
type Ranked interface {
	Key() string
	Rank() int
}

// Registry is a thread-safe set of ranked items, unique by key
type Registry[T Ranked] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty Registry
func New[T Ranked]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Register adds item under item.Key(). Empty and duplicate keys are
// rejected; the first registration wins.
func (r *Registry[T]) Register(item T) error {
	key := item.Key()
	if key == "" {
		return errors.New(errors.ErrInvalidInput, "registry key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%q is already registered", key).
			WithDetail("key", key)
	}
	r.items[key] = item
	return nil
}

// Get returns the item registered under key
func (r *Registry[T]) Get(key string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[key]
	return item, ok
}

// Len returns the number of registered items
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Ordered returns a snapshot of the items by ascending rank, equal ranks
// by key.
func (r *Registry[T]) Ordered() []T {
	r.mu.RLock()
	out := make([]T, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank() != out[j].Rank() {
			return out[i].Rank() < out[j].Rank()
		}
		return out[i].Key() < out[j].Key()
	})
	return out
}

// MustRegister registers item and panics on failure. Use it where a
// failed registration is a programming error.
func MustRegister[T Ranked](reg *Registry[T], item T) {
	if err := reg.Register(item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", item.Key(), err))
	}
}
