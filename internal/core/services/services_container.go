package services

import (
	portsrepo "github.com/SscSPs/price_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/price_tracker_app/internal/core/ports/sources"
	"github.com/SscSPs/price_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, source sources.PriceSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Refresh = NewRefreshService(
		repos.PriceRepo,
		source,
		WithStalenessWindow(cfg.StalenessWindow),
	)

	container.Price = NewPriceService(
		repos.PriceRepo,
		WithRefresher(container.Refresh),
		WithChangeWindow(cfg.ChangeWindow),
	)

	container.Watchlist = NewWatchlistService(
		repos.WatchlistRepo,
		repos.CurrencyRepo,
		WithWatchlistChangeWindow(cfg.ChangeWindow),
	)

	container.TokenService = NewTokenService(cfg)
	container.User = NewUserService(repos.UserRepo, container.TokenService)

	return container
}
