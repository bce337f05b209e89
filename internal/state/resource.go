package state

import (
	"context"
	"sync"
)

// Resource is the cached copy of one fetched value. Only the most recently
// issued Refresh may commit, and only while its lifecycle is still mounted.
// A failed refresh records the error and keeps the previous value.
type Resource[T any] struct {
	life *Lifecycle

	mu      sync.Mutex
	gen     uint64
	value   T
	loaded  bool
	loading bool
	err     error
}

func NewResource[T any](life *Lifecycle) *Resource[T] {
	return &Resource[T]{life: life}
}

// Refresh calls fetch and commits its result. Extra guards are checked at
// commit time; any false guard discards the result. It reports whether the
// result was committed, and returns fetch's error either way.
func (r *Resource[T]) Refresh(ctx context.Context, fetch func(context.Context) (T, error), guards ...func() bool) (bool, error) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.loading = true
	r.mu.Unlock()

	var epoch uint64
	if r.life != nil {
		epoch = r.life.Epoch()
	}

	v, err := fetch(ctx)

	if r.life != nil && !r.life.AliveAt(epoch) {
		return false, err
	}
	for _, ok := range guards {
		if !ok() {
			return false, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return false, err
	}
	r.loading = false
	if err != nil {
		r.err = err
		return true, err
	}
	r.value = v
	r.loaded = true
	r.err = nil
	return true, nil
}

// Set replaces the value wholesale. Refreshes still in flight are discarded.
func (r *Resource[T]) Set(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.value = v
	r.loaded = true
	r.loading = false
	r.err = nil
}

// Update patches the cached value in place. It is a no-op before the first
// successful load.
func (r *Resource[T]) Update(fn func(T) T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return false
	}
	r.value = fn(r.value)
	return true
}

// Reset forgets the value and discards refreshes in flight.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	r.gen++
	r.value = zero
	r.loaded = false
	r.loading = false
	r.err = nil
}

func (r *Resource[T]) Value() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value, r.loaded
}

func (r *Resource[T]) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// Err is the error of the last committed refresh, nil after a success.
func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
