package mapping

import (
	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	"github.com/SscSPs/price_tracker_app/internal/models"
)

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	d := domain.Currency{
		ID:       m.ID,
		Code:     m.Code,
		Name:     m.Name,
		IsActive: m.IsActive,
	}
	if m.Icon.Valid {
		icon := m.Icon.String
		d.Icon = &icon
	}
	return d
}
