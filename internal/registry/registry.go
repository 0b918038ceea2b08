// Package registry accumulates the route metadata discovered during one
// build pass. Entries are appended by the annotation processor and read by
// the synthesizers; the registry itself never validates or deduplicates.
package registry

import (
	"sort"
	"sync"
)

// Entry is the validated, immutable metadata extracted from one annotated
// handler declaration. Path may be empty, which denotes the scope root.
type Entry struct {
	Scope   string `validate:"required"`
	Handler string `validate:"required"`
	Path    string
	Verb    string `validate:"required,oneof=GET POST PUT DELETE PATCH"`
}

// Registry maps a scope key to the entries filed under it, in insertion
// order. It is safe for concurrent use: inserts are mutually exclusive with
// all other operations, and snapshots never observe a partial insert.
type Registry struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

// New returns an empty registry. One registry lives for exactly one build
// pass and is discarded with it; nothing is persisted across passes.
func New() *Registry {
	return &Registry{entries: make(map[string][]Entry)}
}

// Insert appends e to the sequence for scope, creating the sequence if
// absent. It performs no validation and always succeeds; duplicate entries
// are preserved.
func (r *Registry) Insert(scope string, e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[scope] = append(r.entries[scope], e)
}

// SnapshotFor returns a copy of the sequence filed under scope. An unknown
// scope yields an empty slice, never an error.
func (r *Registry) SnapshotFor(scope string) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries[scope]))
	copy(out, r.entries[scope])
	return out
}

// SnapshotAll returns a copy of the full scope-to-entries mapping.
func (r *Registry) SnapshotAll() map[string][]Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]Entry, len(r.entries))
	for scope, seq := range r.entries {
		cp := make([]Entry, len(seq))
		copy(cp, seq)
		out[scope] = cp
	}
	return out
}

// Scopes returns every scope key in sorted order so iteration over the
// registry produces stable output.
func (r *Registry) Scopes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.entries))
	for scope := range r.entries {
		keys = append(keys, scope)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the total entry count across all scopes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, seq := range r.entries {
		n += len(seq)
	}
	return n
}
