package repository

import (
	"context"
	"errors"

	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
)

// ErrNotFound is returned by repositories when no document matches.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail and ErrDuplicateUserName are returned by Create when a
// store-level unique index rejects the insert.
var (
	ErrDuplicateEmail    = errors.New("duplicate email")
	ErrDuplicateUserName = errors.New("duplicate userName")
)

// UserRepository defines the interface for user-related database operations.
// Lookups are exact-match equality filters.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUserName(ctx context.Context, userName string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUserName(ctx context.Context, userName string) (*entity.User, error)
}
