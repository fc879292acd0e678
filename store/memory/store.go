// Package memory implements the registry store contract fully in memory.
// Safe for concurrent access. Intended for unit testing and development.
package memory

import (
	"context"
	"sync"

	resquestatus "github.com/TBScreen/resque-status"
)

// Compile-time interface check.
var _ resquestatus.Store = (*Store)(nil)

// Store is an in-memory implementation of resquestatus.Store.
type Store struct {
	mu sync.RWMutex

	hashes  map[string]map[string][]byte
	strings map[string]string
	sets    map[string]map[string]struct{}
}

// New returns a new empty Store.
func New() *Store {
	return &Store{
		hashes:  make(map[string]map[string][]byte),
		strings: make(map[string]string),
		sets:    make(map[string]map[string]struct{}),
	}
}

// Ping always succeeds for the memory store.
func (m *Store) Ping(_ context.Context) error { return nil }

// HashSet writes payload under field in the hash at key.
func (m *Store) HashSet(_ context.Context, key, field string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hashes[key]
	if !ok {
		h = make(map[string][]byte)
		m.hashes[key] = h
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	h[field] = cp
	return nil
}

// HashGetAll returns a copy of every field of the hash at key.
func (m *Store) HashGetAll(_ context.Context, key string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h := m.hashes[key]
	fields := make(map[string][]byte, len(h))
	for field, payload := range h {
		cp := make([]byte, len(payload))
		copy(cp, payload)
		fields[field] = cp
	}
	return fields, nil
}

// HashDelete removes field from the hash at key. Like Redis, an emptied
// hash ceases to exist.
func (m *Store) HashDelete(_ context.Context, key, field string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.hashes[key]; ok {
		delete(h, field)
		if len(h) == 0 {
			delete(m.hashes, key)
		}
	}
	return nil
}

// Set writes a plain string value.
func (m *Store) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strings[key] = value
	return nil
}

// Get reads a plain string value; ok is false when the key is absent.
func (m *Store) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.strings[key]
	return value, ok, nil
}

// Delete removes the given keys under one lock and returns how many
// existed.
func (m *Store) Delete(_ context.Context, keys ...string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for _, key := range keys {
		if _, ok := m.hashes[key]; ok {
			delete(m.hashes, key)
			removed++
			continue
		}
		if _, ok := m.strings[key]; ok {
			delete(m.strings, key)
			removed++
			continue
		}
		if _, ok := m.sets[key]; ok {
			delete(m.sets, key)
			removed++
		}
	}
	return removed, nil
}

// SetAdd adds member to the set at key.
func (m *Store) SetAdd(_ context.Context, key, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sets[key]
	if !ok {
		s = make(map[string]struct{})
		m.sets[key] = s
	}
	s[member] = struct{}{}
	return nil
}

// SetRemove removes member from the set at key. Like Redis, an emptied
// set ceases to exist.
func (m *Store) SetRemove(_ context.Context, key, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sets[key]; ok {
		delete(s, member)
		if len(s) == 0 {
			delete(m.sets, key)
		}
	}
	return nil
}

// SetMembers returns the members of the set at key.
func (m *Store) SetMembers(_ context.Context, key string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.sets[key]
	members := make([]string, 0, len(s))
	for member := range s {
		members = append(members, member)
	}
	return members, nil
}
