package repositories

import (
	"context"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its numeric ID.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
