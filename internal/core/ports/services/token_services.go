package services

import (
	"context"
	"time"

	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
)

// TokenSvcFacade issues access tokens for authenticated principals.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a JWT for the user and returns its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
