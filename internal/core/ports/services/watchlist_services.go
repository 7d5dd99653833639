package services

import (
	"context"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
)

// WatchlistReaderSvc defines read operations on a user's watchlist
type WatchlistReaderSvc interface {
	// ListWatchlist returns price records for every followed currency.
	ListWatchlist(ctx context.Context, userID int64) ([]domain.PriceRecord, error)
}

// WatchlistWriterSvc defines write operations on a user's watchlist
type WatchlistWriterSvc interface {
	// AddToWatchlist follows a currency. Adding an already followed currency
	// succeeds with added == false. Unknown currencies yield ErrNotFound.
	AddToWatchlist(ctx context.Context, userID, currencyID int64) (added bool, err error)

	// RemoveFromWatchlist unfollows a currency. ErrNotFound when it was not followed.
	RemoveFromWatchlist(ctx context.Context, userID, currencyID int64) error
}

// WatchlistSvcFacade combines all watchlist-related service interfaces
type WatchlistSvcFacade interface {
	WatchlistReaderSvc
	WatchlistWriterSvc
}
