package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
)

// WatchlistReader defines read operations for watchlists
type WatchlistReader interface {
	// ListWatchlistSnapshots returns the currencies followed by userID in the
	// order they were added, with latest and reference observations.
	ListWatchlistSnapshots(ctx context.Context, userID int64, changeWindow time.Duration) ([]domain.CurrencySnapshot, error)
}

// WatchlistWriter defines write operations for watchlists
type WatchlistWriter interface {
	// AddEntry inserts the (user, currency) pair unless already present.
	AddEntry(ctx context.Context, userID, currencyID int64) (added bool, err error)

	// RemoveEntry deletes the (user, currency) pair if present.
	RemoveEntry(ctx context.Context, userID, currencyID int64) (removed bool, err error)
}

// WatchlistRepositoryFacade combines all watchlist-related repository interfaces
type WatchlistRepositoryFacade interface {
	WatchlistReader
	WatchlistWriter
}
