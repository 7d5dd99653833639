package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceObservation is a single append-only price sample for a currency.
type PriceObservation struct {
	ID         int64     `json:"id"`
	CurrencyID int64     `json:"currencyID"`
	Price      int64     `json:"price"` // Unit agnostic, no fractional part
	CreatedAt  time.Time `json:"createdAt"`
}

// PriceRecord is the read projection of a currency: its latest price plus the
// change against the reference observation one change-window ago.
type PriceRecord struct {
	CurrencyID    int64
	Name          string
	Code          string
	Price         int64
	ChangePercent float64
	LastUpdated   time.Time
}

// CurrencySnapshot bundles a currency with the observations needed to project it.
type CurrencySnapshot struct {
	Currency  Currency
	Latest    *PriceObservation
	Reference *PriceObservation // Newest observation at or before now - window
}

// ChangePercent returns (latest - reference) / reference * 100 rounded to two
// decimal places. A zero reference yields 0.
func ChangePercent(latest, reference int64) float64 {
	if reference == 0 {
		return 0
	}
	l := decimal.NewFromInt(latest)
	r := decimal.NewFromInt(reference)
	return l.Sub(r).Div(r).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

// Project builds the PriceRecord for a snapshot. ok is false when the
// currency has no observation at all and must be left out of listings.
func (s CurrencySnapshot) Project() (record PriceRecord, ok bool) {
	if s.Latest == nil {
		return PriceRecord{}, false
	}

	change := 0.0
	if s.Reference != nil {
		change = ChangePercent(s.Latest.Price, s.Reference.Price)
	}

	return PriceRecord{
		CurrencyID:    s.Currency.ID,
		Name:          s.Currency.Name,
		Code:          s.Currency.Code,
		Price:         s.Latest.Price,
		ChangePercent: change,
		LastUpdated:   s.Latest.CreatedAt,
	}, true
}

// ProjectAll projects every snapshot, dropping those without observations.
// Input order is preserved.
func ProjectAll(snapshots []CurrencySnapshot) []PriceRecord {
	records := make([]PriceRecord, 0, len(snapshots))
	for _, s := range snapshots {
		if rec, ok := s.Project(); ok {
			records = append(records, rec)
		}
	}
	return records
}

// PriceQuote is a freshly scraped price for a currency code, ready to be stored.
type PriceQuote struct {
	Code  string
	Name  string // Used only when the currency does not exist yet
	Price int64
}
