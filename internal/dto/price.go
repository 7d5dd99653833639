package dto

import (
	"time"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
)

// PriceRecordResponse is the wire shape of a currency's latest price and 24h change.
type PriceRecordResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Price       int64   `json:"price"`
	Change24h   float64 `json:"change_24h"`
	LastUpdated string  `json:"last_updated"` // ISO-8601
}

// ToPriceRecordResponse converts a domain.PriceRecord to its response DTO
func ToPriceRecordResponse(rec domain.PriceRecord) PriceRecordResponse {
	return PriceRecordResponse{
		ID:          rec.CurrencyID,
		Name:        rec.Name,
		Code:        rec.Code,
		Price:       rec.Price,
		Change24h:   rec.ChangePercent,
		LastUpdated: rec.LastUpdated.Format(time.RFC3339Nano),
	}
}

// ToListPriceRecordResponse converts records, always returning a non-nil slice
// so an empty list serializes as [].
func ToListPriceRecordResponse(records []domain.PriceRecord) []PriceRecordResponse {
	res := make([]PriceRecordResponse, len(records))
	for i, rec := range records {
		res[i] = ToPriceRecordResponse(rec)
	}
	return res
}
