package cache

import (
	"errors"
	"sync"
	"time"
)

// State of a cache entry.
type State int

const (
	// StateNone means the key was never requested. It doubles as the
	// "prerequisite not selected yet" presentation state: callers render
	// a prompt, not a spinner and not an error banner.
	StateNone State = iota
	StateLoading
	StateFresh
	StateStale
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateFresh:
		return "fresh"
	case StateStale:
		return "stale"
	default:
		return "none"
	}
}

// ErrDisabled marks a query whose prerequisite data is not available yet
// (e.g. a per-section gradebook before a section is chosen). Disabled
// queries must not fetch.
var ErrDisabled = errors.New("query disabled: prerequisite not selected")

type FetchFunc func() (interface{}, error)

type entry struct {
	value     interface{}
	err       error
	fetchedAt time.Time
	stale     bool
	dirty     bool          // invalidated while a fetch was in flight
	inflight  chan struct{} // non-nil while a fetch is running
}

// Store is the process-wide query cache, shared across all views of a
// session. Any caller may read an entry written by another; writes only
// happen through full-key invalidation followed by a refetch, never by
// partial in-place patching.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	ttl     time.Duration
	now     func() time.Time
}

// NewStore returns a Store whose entries stay fresh for ttl after a fetch.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[Key]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) fresh(e *entry) bool {
	return !e.stale && e.err == nil && s.now().Sub(e.fetchedAt) < s.ttl
}

// GetOrFetch returns the cached value for key while it is fresh,
// otherwise it runs fetch and caches the result. Concurrent calls for
// the same key share a single in-flight fetch. Results are stored
// strictly under their originating key, so a response resolving after
// the caller moved on can never corrupt an unrelated entry.
//
// Failed fetches are not cached: the error is returned (and handed to
// every waiter of the shared fetch) and the next read triggers a new
// fetch. No automatic retry happens here.
func (s *Store) GetOrFetch(key Key, fetch FetchFunc) (interface{}, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		if e.inflight != nil {
			// share the in-flight fetch
			ch := e.inflight
			s.mu.Unlock()
			<-ch
			s.mu.Lock()
			var v interface{}
			var err error
			if e, ok := s.entries[key]; ok {
				v, err = e.value, e.err
			}
			s.mu.Unlock()
			return v, err
		}
		if s.fresh(e) {
			v := e.value
			s.mu.Unlock()
			return v, nil
		}
	}

	// become the fetch owner
	e, ok := s.entries[key]
	if !ok {
		e = new(entry)
		s.entries[key] = e
	}
	ch := make(chan struct{})
	e.inflight = ch
	s.mu.Unlock()

	v, err := fetch()

	s.mu.Lock()
	e.value, e.err = v, err
	e.fetchedAt = s.now()
	e.stale = err != nil || e.dirty
	e.dirty = false
	e.inflight = nil
	close(ch)
	s.mu.Unlock()
	return v, err
}

// Peek returns the cached value and state for key without fetching.
func (s *Store) Peek(key Key) (interface{}, State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, StateNone
	}
	if e.inflight != nil {
		return e.value, StateLoading
	}
	if s.fresh(e) {
		return e.value, StateFresh
	}
	return e.value, StateStale
}

// State reports the lifecycle state of key.
func (s *Store) State(key Key) State {
	_, st := s.Peek(key)
	return st
}

// Invalidate marks the entry for key stale; the next read refetches.
// Invalidating a key whose fetch is still in flight marks the entry
// dirty so the landing result is immediately stale: over-invalidation
// beats serving data a mutation may have changed.
func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		s.invalidateEntry(e)
	}
	s.mu.Unlock()
}

// InvalidateResource marks every entry of the given resource stale,
// list keys and detail keys alike.
func (s *Store) InvalidateResource(resource string) {
	s.mu.Lock()
	for k, e := range s.entries {
		if k.Resource == resource {
			s.invalidateEntry(e)
		}
	}
	s.mu.Unlock()
}

func (s *Store) invalidateEntry(e *entry) {
	if e.inflight != nil {
		e.dirty = true
		return
	}
	e.stale = true
}

// Refresh forces a refetch of key regardless of freshness.
func (s *Store) Refresh(key Key, fetch FetchFunc) (interface{}, error) {
	s.Invalidate(key)
	return s.GetOrFetch(key, fetch)
}
