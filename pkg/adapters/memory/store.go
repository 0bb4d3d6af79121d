package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/dfa/pkg/domain"
)

// Store implements ports.ReportStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Report
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Report),
	}
}

// Save persists the report in memory.
func (s *Store) Save(ctx context.Context, report *domain.Report) error {
	copied := clone(report)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[report.ID] = copied
	return nil
}

// Load retrieves the report from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.data[id]
	if !ok {
		return nil, domain.ErrReportNotFound
	}

	// Copy on read so the caller can't mutate store state through the pointer
	return clone(report), nil
}

// Delete removes the report.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored report IDs in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func clone(r *domain.Report) *domain.Report {
	c := *r
	if r.Input != nil {
		in := *r.Input
		c.Input = &in
	}
	c.Counts = make(map[string]uint64, len(r.Counts))
	for k, v := range r.Counts {
		c.Counts[k] = v
	}
	return &c
}
