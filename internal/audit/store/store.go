// Package store persists audit cases for the officer review surface.
package store

import (
	"context"

	"hesabu/internal/audit"
	id "hesabu/pkg/domain"
)

// Store persists and lists audit cases.
//
// Error Contract:
// - Create returns nil on success and wrapped errors for infrastructure failures
// - List methods return empty slices, not errors, when nothing matches
type Store interface {
	Create(ctx context.Context, auditCase *audit.AuditCase) error
	// ListAll returns every case ordered by score descending, then creation
	// time descending.
	ListAll(ctx context.Context) ([]*audit.AuditCase, error)
	// ListByPIN returns one taxpayer's cases, newest first, optionally
	// filtered by level (empty level means no filter).
	ListByPIN(ctx context.Context, pin id.PIN, level id.RiskLevel) ([]*audit.AuditCase, error)
}
