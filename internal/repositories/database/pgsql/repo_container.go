package pgsql

import (
	portsrepo "github.com/SscSPs/price_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:  newPgxCurrencyRepository(dbPool),
		PriceRepo:     newPgxPriceRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		WatchlistRepo: newPgxWatchlistRepository(dbPool),
	}
}
