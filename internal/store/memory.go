package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of Store.
type MemoryStore struct {
	mu       sync.Mutex
	capacity int
	entries  []Analysis
}

// NewMemoryStore creates an in-memory store retaining at most capacity
// analyses.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemoryStore{capacity: capacity}
}

// Save stores the analysis in memory, newest first, evicting the oldest
// entry once the capacity is reached.
func (m *MemoryStore) Save(_ context.Context, analysis Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append([]Analysis{analysis}, m.entries...)
	if len(m.entries) > m.capacity {
		m.entries = m.entries[:m.capacity]
	}
	return nil
}

// Recent returns up to limit analyses, newest first.
func (m *MemoryStore) Recent(_ context.Context, limit int) ([]Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]Analysis, limit)
	copy(out, m.entries[:limit])
	return out, nil
}
