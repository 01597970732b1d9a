package ingest

import "sync"

// DedupSet remembers which record ids have been ingested. It only grows.
type DedupSet interface {
	Contains(id string) bool
	Add(id string) error
	Len() int
}

// MemorySet is a DedupSet that lives for the process lifetime.
type MemorySet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewMemorySet returns an empty MemorySet.
func NewMemorySet() *MemorySet {
	return &MemorySet{seen: make(map[string]struct{})}
}

func (m *MemorySet) Contains(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.seen[id]
	return ok
}

func (m *MemorySet) Add(id string) error {
	m.mu.Lock()
	m.seen[id] = struct{}{}
	m.mu.Unlock()
	return nil
}

func (m *MemorySet) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.seen)
}
