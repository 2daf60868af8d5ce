package session

import (
	"context"

	id "hesabu/pkg/domain"
)

// Store persists live sessions between answers. Implementations return
// sentinel.ErrNotFound for unknown or expired sessions.
type Store interface {
	Get(ctx context.Context, sessionID id.SessionID) (*Session, error)
	Put(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, sessionID id.SessionID) error
}
