package repositories

import (
	"context"

	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
)

// UserRepositoryFacade persists principals.
type UserRepositoryFacade interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate when the
	// username is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID loads a user by ID. Returns apperrors.ErrNotFound if absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername loads a user by username. Returns apperrors.ErrNotFound if absent.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers returns a page of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}
