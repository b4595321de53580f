package services

import (
	portsrepo "github.com/TraceKeep/custody_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/TraceKeep/custody_ledger_app/internal/core/ports/services"
	"github.com/TraceKeep/custody_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.UserRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.ProductRepo)
	container.Token = NewTokenService(cfg)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.ProductSvcFacade = (*productService)(nil)
	_ portssvc.JournalSvcFacade = (*journalService)(nil)
	_ portssvc.UserSvcFacade    = (*userService)(nil)
	_ portssvc.TokenSvcFacade   = (*tokenService)(nil)
)
