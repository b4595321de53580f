package services

import (
	"context"

	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	"github.com/TraceKeep/custody_ledger_app/internal/dto"
)

// UserSvcFacade manages principals that can hold custody of products.
type UserSvcFacade interface {
	// RegisterUser creates a new principal with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// AuthenticateUser verifies credentials and returns the principal.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)

	// GetUserByID returns a principal by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers returns a page of principals.
	ListUsers(ctx context.Context, params dto.ListUsersParams) (*dto.ListUsersResponse, error)
}
