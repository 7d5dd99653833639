package services

import (
	"context"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
)

// PriceReaderSvc defines the public price list read
type PriceReaderSvc interface {
	// ListPrices refreshes stale data if needed and returns the projection
	// of every active currency that has at least one observation.
	ListPrices(ctx context.Context) ([]domain.PriceRecord, error)
}

// RefreshSvc decides when the price history must be re-fetched from upstream.
type RefreshSvc interface {
	// RefreshIfStale fetches and stores new prices when the newest stored
	// observation is older than the staleness window. Upstream failures are
	// logged and reported as refreshed == false with a nil error.
	RefreshIfStale(ctx context.Context) (refreshed bool, err error)

	// Refresh fetches and stores new prices unconditionally and returns how
	// many observations were recorded.
	Refresh(ctx context.Context) (recorded int, err error)
}

// PriceSvcFacade combines all price-related service interfaces
type PriceSvcFacade interface {
	PriceReaderSvc
}
