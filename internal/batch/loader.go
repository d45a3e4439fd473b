// Package batch provides a request-scoped, coalescing key/value loader.
// Concurrent Load calls for distinct keys are collected into a single
// batched fetch per source, and results are cached for the lifetime of the
// loader. Loaders are meant to live exactly as long as one top-level
// request; nothing here is shared across requests.
package batch

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is reported for keys the fetch function did not return.
var ErrNotFound = errors.New("not found")

// DefaultWait is the window during which Load calls are collected into one
// batch before the fetch fires.
const DefaultWait = 2 * time.Millisecond

// FetchFunc resolves a batch of keys. Keys absent from the returned map are
// treated as not found; a returned error fails every key in the batch.
type FetchFunc[K comparable, V any] func(ctx context.Context, keys []K) (map[K]V, error)

type thunk[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// Loader coalesces and caches lookups against a single source.
type Loader[K comparable, V any] struct {
	fetch FetchFunc[K, V]
	base  context.Context
	wait  time.Duration

	mu      sync.Mutex
	cache   map[K]*thunk[V]
	pending []K
	armed   bool
}

// NewLoader returns a loader bound to base. Batched fetches run on base
// rather than on any single caller's context, so cancelling one caller does
// not abort a batch that sibling computations are still waiting on.
func NewLoader[K comparable, V any](base context.Context, fetch FetchFunc[K, V]) *Loader[K, V] {
	return &Loader[K, V]{
		fetch: fetch,
		base:  base,
		wait:  DefaultWait,
		cache: make(map[K]*thunk[V]),
	}
}

// Load returns the value for key, batching with concurrent callers and
// serving repeated keys from cache.
func (l *Loader[K, V]) Load(ctx context.Context, key K) (V, error) {
	l.mu.Lock()

	t, cached := l.cache[key]
	if !cached {
		t = &thunk[V]{done: make(chan struct{})}
		l.cache[key] = t
		l.pending = append(l.pending, key)

		if !l.armed {
			l.armed = true

			time.AfterFunc(l.wait, l.flush)
		}
	}

	l.mu.Unlock()

	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

func (l *Loader[K, V]) flush() {
	l.mu.Lock()

	keys := l.pending
	l.pending = nil
	l.armed = false

	thunks := make([]*thunk[V], len(keys))
	for i, k := range keys {
		thunks[i] = l.cache[k]
	}

	l.mu.Unlock()

	if len(keys) == 0 {
		return
	}

	values, err := l.fetch(l.base, keys)

	for i, k := range keys {
		t := thunks[i]

		if err != nil {
			t.err = err
		} else if v, ok := values[k]; ok {
			t.val = v
		} else {
			t.err = ErrNotFound
		}

		close(t.done)
	}
}
