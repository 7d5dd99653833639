package mapping

import (
	"database/sql"
	"testing"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainCurrencySnapshot(t *testing.T) {
	latestAt := time.Date(2026, 10, 15, 9, 59, 0, 0, time.UTC)
	refAt := latestAt.Add(-25 * time.Hour)

	t.Run("with both observations", func(t *testing.T) {
		row := models.CurrencySnapshotRow{
			Currency:        models.Currency{ID: 3, Code: "usd", Name: "US Dollar", IsActive: true, Icon: sql.NullString{String: "usd.png", Valid: true}},
			LatestID:        sql.NullInt64{Int64: 11, Valid: true},
			LatestPrice:     sql.NullInt64{Int64: 110, Valid: true},
			LatestCreatedAt: sql.NullTime{Time: latestAt, Valid: true},
			RefID:           sql.NullInt64{Int64: 5, Valid: true},
			RefPrice:        sql.NullInt64{Int64: 100, Valid: true},
			RefCreatedAt:    sql.NullTime{Time: refAt, Valid: true},
		}

		s := ToDomainCurrencySnapshot(row)

		require.NotNil(t, s.Latest)
		require.NotNil(t, s.Reference)
		require.NotNil(t, s.Currency.Icon)
		assert.Equal(t, "usd.png", *s.Currency.Icon)
		assert.Equal(t, int64(110), s.Latest.Price)
		assert.Equal(t, int64(3), s.Latest.CurrencyID)
		assert.Equal(t, latestAt, s.Latest.CreatedAt)
		assert.Equal(t, int64(100), s.Reference.Price)
		assert.Equal(t, refAt, s.Reference.CreatedAt)
	})

	t.Run("without observations", func(t *testing.T) {
		s := ToDomainCurrencySnapshot(models.CurrencySnapshotRow{Currency: models.Currency{ID: 4, Code: "gold_18"}})

		assert.Nil(t, s.Latest)
		assert.Nil(t, s.Reference)
		assert.Nil(t, s.Currency.Icon)
	})
}

func TestUserMappingEmail(t *testing.T) {
	m := ToModelUser(ToDomainUser(models.User{ID: 1, Username: "sara"}))
	assert.False(t, m.Email.Valid)

	m = ToModelUser(ToDomainUser(models.User{ID: 1, Username: "sara", Email: sql.NullString{String: "s@example.com", Valid: true}}))
	assert.True(t, m.Email.Valid)
	assert.Equal(t, "s@example.com", m.Email.String)
}
