package pgsql

import (
	"fmt"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	"github.com/SscSPs/price_tracker_app/internal/models"
	"github.com/SscSPs/price_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// snapshotColumns and snapshotJoins build a row per currency with its latest
// price log and its newest price log at least $1 seconds old. Both ages use
// the database clock, the same one that stamps created_at.
const snapshotColumns = `
	c.id, c.code, c.name, c.icon, c.is_active,
	l.id, l.price, l.created_at,
	r.id, r.price, r.created_at`

const snapshotJoins = `
	LEFT JOIN LATERAL (
		SELECT id, price, created_at FROM price_logs
		WHERE currency_id = c.id
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	) l ON TRUE
	LEFT JOIN LATERAL (
		SELECT id, price, created_at FROM price_logs
		WHERE currency_id = c.id AND created_at <= now() - make_interval(secs => $1)
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	) r ON TRUE`

// windowSeconds converts a look-back window into the $1 argument of snapshotJoins.
func windowSeconds(d time.Duration) float64 {
	return d.Seconds()
}

func collectSnapshots(rows pgx.Rows) ([]domain.CurrencySnapshot, error) {
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencySnapshotRow, error) {
		var s models.CurrencySnapshotRow
		err := row.Scan(
			&s.ID, &s.Code, &s.Name, &s.Icon, &s.IsActive,
			&s.LatestID, &s.LatestPrice, &s.LatestCreatedAt,
			&s.RefID, &s.RefPrice, &s.RefCreatedAt,
		)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency snapshots: %w", err)
	}

	return mapping.ToDomainCurrencySnapshotSlice(modelRows), nil
}
