package rag

import (
	"sync"
	"time"
)

type regEntry struct {
	idx      *Index
	lastUsed time.Time
}

// Registry maps an uploaded file name to its built index. Same-name
// re-upload replaces the entry atomically (latest wins). Entries expire
// after ttl of disuse, and the map never grows past capacity — the
// least-recently-used entry is dropped to make room.
type Registry struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time
	entries  map[string]*regEntry
}

func NewRegistry(capacity int, ttl time.Duration) *Registry {
	if capacity <= 0 {
		capacity = 64
	}
	return &Registry{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[string]*regEntry),
	}
}

// Put registers a fully built index under name. Only called on successful
// builds, so a failed rebuild never clobbers a prior entry.
func (r *Registry) Put(name string, ix *Index) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.dropExpired(now)
	if _, exists := r.entries[name]; !exists && len(r.entries) >= r.capacity {
		r.dropOldest()
	}
	r.entries[name] = &regEntry{idx: ix, lastUsed: now}
}

// Get returns the index for name, refreshing its TTL. The second return is
// false for unknown or expired names.
func (r *Registry) Get(name string) (*Index, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	now := r.now()
	if r.ttl > 0 && now.Sub(e.lastUsed) > r.ttl {
		delete(r.entries, name)
		return nil, false
	}
	e.lastUsed = now
	return e.idx, true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// callers hold r.mu
func (r *Registry) dropExpired(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for name, e := range r.entries {
		if now.Sub(e.lastUsed) > r.ttl {
			delete(r.entries, name)
		}
	}
}

// callers hold r.mu
func (r *Registry) dropOldest() {
	var oldest string
	var when time.Time
	for name, e := range r.entries {
		if oldest == "" || e.lastUsed.Before(when) {
			oldest, when = name, e.lastUsed
		}
	}
	if oldest != "" {
		delete(r.entries, oldest)
	}
}
