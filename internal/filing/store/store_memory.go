package store

import (
	"context"
	"sync"

	id "hesabu/pkg/domain"
)

// MemoryStore keeps the answer trail in memory for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	records []AnswerRecord
}

// NewMemoryStore constructs an empty in-memory answer store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, record AnswerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

func (s *MemoryStore) ListByPIN(_ context.Context, pin id.PIN) ([]AnswerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]AnswerRecord, 0)
	for _, record := range s.records {
		if record.PIN == pin {
			matched = append(matched, record)
		}
	}
	return matched, nil
}
