package project

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps projects in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	current *Project
	recent  []Project
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveCurrent(_ context.Context, p Project) error {
	p.State = p.State.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &p
	s.recent = Remember(s.recent, p)
	return nil
}

func (s *MemoryStore) Current(context.Context) (Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Project{}, ErrNotFound
	}
	p := *s.current
	p.State = p.State.Clone()
	return p, nil
}

func (s *MemoryStore) ClearCurrent(context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Recent(context.Context) ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Clone(s.recent)
	for i := range out {
		out[i].State = out[i].State.Clone()
	}
	return out, nil
}
