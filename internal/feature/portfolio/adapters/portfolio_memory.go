package adapters

import (
	"context"
	"sync"

	"stock_dashboard/internal/feature/portfolio/usecase"
)

// PortfolioMemory is the process-local store used when Redis is unavailable.
// Bookmarks are lost on restart.
type PortfolioMemory struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

var _ usecase.Store = (*PortfolioMemory)(nil)

// NewPortfolioMemory creates an empty in-memory store.
func NewPortfolioMemory() *PortfolioMemory {
	return &PortfolioMemory{sets: make(map[string]map[string]struct{})}
}

func (m *PortfolioMemory) Add(ctx context.Context, clientID, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.sets[clientID]
	if !ok {
		set = make(map[string]struct{})
		m.sets[clientID] = set
	}
	set[code] = struct{}{}
	return nil
}

func (m *PortfolioMemory) Remove(ctx context.Context, clientID, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.sets[clientID]
	if !ok {
		return nil
	}
	delete(set, code)
	if len(set) == 0 {
		delete(m.sets, clientID)
	}
	return nil
}

func (m *PortfolioMemory) Contains(ctx context.Context, clientID, code string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.sets[clientID][code]
	return ok, nil
}

func (m *PortfolioMemory) Members(ctx context.Context, clientID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.sets[clientID]))
	for code := range m.sets[clientID] {
		out = append(out, code)
	}
	return out, nil
}
