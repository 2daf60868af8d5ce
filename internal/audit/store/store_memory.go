package store

import (
	"context"
	"sort"
	"sync"

	"hesabu/internal/audit"
	id "hesabu/pkg/domain"
)

// MemoryStore keeps audit cases in memory for tests/dev.
type MemoryStore struct {
	mu    sync.RWMutex
	cases []*audit.AuditCase
}

// NewMemoryStore constructs an empty in-memory case store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(_ context.Context, auditCase *audit.AuditCase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *auditCase
	s.cases = append(s.cases, &copied)
	return nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]*audit.AuditCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	listed := make([]*audit.AuditCase, len(s.cases))
	copy(listed, s.cases)
	sort.SliceStable(listed, func(i, j int) bool {
		if listed[i].Score != listed[j].Score {
			return listed[i].Score > listed[j].Score
		}
		return listed[i].CreatedAt.After(listed[j].CreatedAt)
	})
	return listed, nil
}

func (s *MemoryStore) ListByPIN(_ context.Context, pin id.PIN, level id.RiskLevel) ([]*audit.AuditCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]*audit.AuditCase, 0)
	for _, auditCase := range s.cases {
		if auditCase.PIN != pin {
			continue
		}
		if level != "" && auditCase.Level != level {
			continue
		}
		matched = append(matched, auditCase)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}
