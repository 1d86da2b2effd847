package core

import "context"

// SessionPersister stores the single session record that must survive
// a process restart. Save must be atomic: it either replaces the
// previous record or leaves it intact.
type SessionPersister interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Clear(ctx context.Context) error
}
