package db

import (
	"context"
	"sync"

	"github.com/jsphweid/tonality/scale"
	"github.com/jsphweid/tonality/util"
)

type MemoryStore struct {
	mu     sync.RWMutex
	scales map[string]scale.Scale
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scales: make(map[string]scale.Scale)}
}

func (m *MemoryStore) Put(_ context.Context, name string, s scale.Scale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scales[name] = s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, name string) (scale.Scale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.scales[name]
	if !ok {
		return scale.Scale{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) GetMany(_ context.Context, names []string) (map[string]scale.Scale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make(map[string]scale.Scale)
	for _, name := range names {
		if s, ok := m.scales[name]; ok {
			res[name] = s
		}
	}
	return res, nil
}

func (m *MemoryStore) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return util.GetKeys(m.scales), nil
}
