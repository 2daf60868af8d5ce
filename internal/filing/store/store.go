// Package store persists the permanent answer trail: every accepted answer
// becomes one immutable row, so a return can be reconstructed field by field
// after the session itself is gone.
package store

import (
	"context"
	"time"

	id "hesabu/pkg/domain"
)

// AnswerRecord is one accepted answer.
type AnswerRecord struct {
	PIN        id.PIN
	FilingType id.FilingType
	Section    string
	Field      string
	Value      string
	SessionID  id.SessionID
	CreatedAt  time.Time
}

// Store appends answers and reads a taxpayer's trail back in insertion order.
//
// Error Contract:
// - Append returns nil on success and wrapped errors for infrastructure failures
// - ListByPIN returns an empty slice, not an error, when the PIN has no rows
type Store interface {
	Append(ctx context.Context, record AnswerRecord) error
	ListByPIN(ctx context.Context, pin id.PIN) ([]AnswerRecord, error)
}
