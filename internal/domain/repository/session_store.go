package repository

import (
	"context"

	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
)

// SessionStore keeps server-side sessions keyed by a random identifier.
// Get returns ErrNotFound for unknown or expired identifiers; Destroy is
// idempotent.
type SessionStore interface {
	Create(ctx context.Context, userName string) (*entity.Session, error)
	Get(ctx context.Context, id string) (*entity.Session, error)
	Destroy(ctx context.Context, id string) error
}
