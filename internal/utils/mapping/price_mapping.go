package mapping

import (
	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	"github.com/SscSPs/price_tracker_app/internal/models"
)

// ToDomainPriceObservation converts a model PriceLog to a domain PriceObservation
func ToDomainPriceObservation(m models.PriceLog) domain.PriceObservation {
	return domain.PriceObservation{
		ID:         m.ID,
		CurrencyID: m.CurrencyID,
		Price:      m.Price,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainCurrencySnapshot converts a joined snapshot row to a domain snapshot.
func ToDomainCurrencySnapshot(row models.CurrencySnapshotRow) domain.CurrencySnapshot {
	s := domain.CurrencySnapshot{Currency: ToDomainCurrency(row.Currency)}
	if row.LatestID.Valid {
		s.Latest = &domain.PriceObservation{
			ID:         row.LatestID.Int64,
			CurrencyID: row.ID,
			Price:      row.LatestPrice.Int64,
			CreatedAt:  row.LatestCreatedAt.Time,
		}
	}
	if row.RefID.Valid {
		s.Reference = &domain.PriceObservation{
			ID:         row.RefID.Int64,
			CurrencyID: row.ID,
			Price:      row.RefPrice.Int64,
			CreatedAt:  row.RefCreatedAt.Time,
		}
	}
	return s
}

// ToDomainCurrencySnapshotSlice converts a slice of snapshot rows
func ToDomainCurrencySnapshotSlice(rows []models.CurrencySnapshotRow) []domain.CurrencySnapshot {
	ds := make([]domain.CurrencySnapshot, len(rows))
	for i, r := range rows {
		ds[i] = ToDomainCurrencySnapshot(r)
	}
	return ds
}
