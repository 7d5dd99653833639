package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/price_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/price_tracker_app/internal/models"
	"github.com/SscSPs/price_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPriceRepository stores the append-only price history.
type PgxPriceRepository struct {
	BaseRepository
}

func newPgxPriceRepository(pool *pgxpool.Pool) *PgxPriceRepository {
	return &PgxPriceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PriceRepositoryFacade = (*PgxPriceRepository)(nil)

// ObservationAge returns the age of the newest price log of any currency,
// measured against the database clock.
func (r *PgxPriceRepository) ObservationAge(ctx context.Context) (time.Duration, bool, error) {
	var seconds *float64
	query := `SELECT EXTRACT(EPOCH FROM now() - MAX(created_at))::float8 FROM price_logs;`
	if err := r.Pool.QueryRow(ctx, query).Scan(&seconds); err != nil {
		return 0, false, fmt.Errorf("failed to query newest price log age: %w", err)
	}
	if seconds == nil {
		return 0, false, nil
	}
	return time.Duration(*seconds * float64(time.Second)), true, nil
}

// ListActiveSnapshots returns all active currencies ordered by id with their
// latest and reference price logs.
func (r *PgxPriceRepository) ListActiveSnapshots(ctx context.Context, changeWindow time.Duration) ([]domain.CurrencySnapshot, error) {
	query := `SELECT ` + snapshotColumns + `
		FROM currencies c` + snapshotJoins + `
		WHERE c.is_active
		ORDER BY c.id;`

	rows, err := r.Pool.Query(ctx, query, windowSeconds(changeWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to query active currency snapshots: %w", err)
	}
	return collectSnapshots(rows)
}

// RecordQuotes upserts each currency by code and appends a price log for it,
// all in a single transaction.
func (r *PgxPriceRepository) RecordQuotes(ctx context.Context, quotes []domain.PriceQuote) ([]domain.PriceObservation, error) {
	if len(quotes) == 0 {
		return []domain.PriceObservation{}, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	// The no-op update makes RETURNING yield the existing row's id on conflict.
	upsertCurrency := `
		INSERT INTO currencies (code, name, is_active)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (code) DO UPDATE SET code = EXCLUDED.code
		RETURNING id;
	`
	insertLog := `
		INSERT INTO price_logs (currency_id, price)
		VALUES ($1, $2)
		RETURNING id, currency_id, price, created_at;
	`

	observations := make([]domain.PriceObservation, 0, len(quotes))
	for _, q := range quotes {
		var currencyID int64
		if err := tx.QueryRow(ctx, upsertCurrency, q.Code, q.Name).Scan(&currencyID); err != nil {
			return nil, fmt.Errorf("failed to upsert currency %s: %w", q.Code, err)
		}

		var log models.PriceLog
		if err := tx.QueryRow(ctx, insertLog, currencyID, q.Price).Scan(
			&log.ID, &log.CurrencyID, &log.Price, &log.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to insert price log for %s: %w", q.Code, err)
		}
		observations = append(observations, mapping.ToDomainPriceObservation(log))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return observations, nil
}
