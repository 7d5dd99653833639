package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
)

// PriceReader defines read operations over the price history.
type PriceReader interface {
	// ObservationAge returns how long ago, by the store's clock, the newest
	// observation across all currencies was recorded. found is false when no
	// observation exists.
	ObservationAge(ctx context.Context) (age time.Duration, found bool, err error)

	// ListActiveSnapshots returns every active currency ordered by ID, each
	// with its latest observation and its newest observation at least
	// changeWindow old by the store's clock (either may be nil).
	ListActiveSnapshots(ctx context.Context, changeWindow time.Duration) ([]domain.CurrencySnapshot, error)
}

// PriceWriter defines write operations over the price history.
type PriceWriter interface {
	// RecordQuotes upserts each quoted currency by code and appends one
	// observation per quote. Returns the observations created.
	RecordQuotes(ctx context.Context, quotes []domain.PriceQuote) ([]domain.PriceObservation, error)
}

// PriceRepositoryFacade combines all price-related repository interfaces
type PriceRepositoryFacade interface {
	PriceReader
	PriceWriter
}
