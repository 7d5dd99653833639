package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangePercent(t *testing.T) {
	tests := []struct {
		name      string
		latest    int64
		reference int64
		want      float64
	}{
		{name: "ten percent rise", latest: 110, reference: 100, want: 10.0},
		{name: "fall", latest: 90, reference: 100, want: -10.0},
		{name: "unchanged", latest: 100, reference: 100, want: 0},
		{name: "zero reference guarded", latest: 500, reference: 0, want: 0},
		{name: "rounds to two places", latest: 2, reference: 3, want: -33.33},
		{name: "rounds half away from zero", latest: 100005, reference: 100000, want: 0.01},
		{name: "large rial prices", latest: 1_045_000, reference: 1_000_000, want: 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ChangePercent(tt.latest, tt.reference))
		})
	}
}

func TestCurrencySnapshot_Project(t *testing.T) {
	now := time.Now()
	usd := domain.Currency{ID: 1, Code: "usd", Name: "US Dollar", IsActive: true}

	t.Run("no observation is omitted", func(t *testing.T) {
		_, ok := domain.CurrencySnapshot{Currency: usd}.Project()
		assert.False(t, ok)
	})

	t.Run("no reference reports zero change", func(t *testing.T) {
		rec, ok := domain.CurrencySnapshot{
			Currency: usd,
			Latest:   &domain.PriceObservation{Price: 110, CreatedAt: now},
		}.Project()
		require.True(t, ok)
		assert.Equal(t, int64(110), rec.Price)
		assert.Equal(t, 0.0, rec.ChangePercent)
	})

	t.Run("reference 25h ago and latest 1m ago", func(t *testing.T) {
		latestAt := now.Add(-time.Minute)
		rec, ok := domain.CurrencySnapshot{
			Currency:  usd,
			Latest:    &domain.PriceObservation{Price: 110, CreatedAt: latestAt},
			Reference: &domain.PriceObservation{Price: 100, CreatedAt: now.Add(-25 * time.Hour)},
		}.Project()
		require.True(t, ok)
		assert.Equal(t, domain.PriceRecord{
			CurrencyID:    1,
			Name:          "US Dollar",
			Code:          "usd",
			Price:         110,
			ChangePercent: 10.0,
			LastUpdated:   latestAt,
		}, rec)
	})

	t.Run("zero reference price reports zero change", func(t *testing.T) {
		rec, ok := domain.CurrencySnapshot{
			Currency:  usd,
			Latest:    &domain.PriceObservation{Price: 110, CreatedAt: now},
			Reference: &domain.PriceObservation{Price: 0, CreatedAt: now.Add(-30 * time.Hour)},
		}.Project()
		require.True(t, ok)
		assert.Equal(t, 0.0, rec.ChangePercent)
	})
}

func TestProjectAll_DropsEmptyAndKeepsOrder(t *testing.T) {
	now := time.Now()
	snapshots := []domain.CurrencySnapshot{
		{Currency: domain.Currency{ID: 1, Code: "usd"}, Latest: &domain.PriceObservation{Price: 1, CreatedAt: now}},
		{Currency: domain.Currency{ID: 2, Code: "gold_18"}},
		{Currency: domain.Currency{ID: 3, Code: "coin_half"}, Latest: &domain.PriceObservation{Price: 3, CreatedAt: now}},
	}

	records := domain.ProjectAll(snapshots)

	require.Len(t, records, 2)
	assert.Equal(t, "usd", records[0].Code)
	assert.Equal(t, "coin_half", records[1].Code)
	assert.NotNil(t, domain.ProjectAll(nil))
}

func TestDisplayNameFromCode(t *testing.T) {
	assert.Equal(t, "USD", domain.DisplayNameFromCode("usd"))
	assert.Equal(t, "GOLD 18", domain.DisplayNameFromCode("gold_18"))
	assert.Equal(t, "COIN QUARTER", domain.DisplayNameFromCode("coin_quarter"))
}
