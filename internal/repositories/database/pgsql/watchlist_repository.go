package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/apperrors"
	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/price_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxWatchlistRepository stores per-user followed currencies.
type PgxWatchlistRepository struct {
	BaseRepository
}

func newPgxWatchlistRepository(pool *pgxpool.Pool) *PgxWatchlistRepository {
	return &PgxWatchlistRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WatchlistRepositoryFacade = (*PgxWatchlistRepository)(nil)

// ListWatchlistSnapshots returns the user's followed currencies, oldest follow first.
func (r *PgxWatchlistRepository) ListWatchlistSnapshots(ctx context.Context, userID int64, changeWindow time.Duration) ([]domain.CurrencySnapshot, error) {
	query := `SELECT ` + snapshotColumns + `
		FROM watchlists w
		JOIN currencies c ON c.id = w.currency_id` + snapshotJoins + `
		WHERE w.user_id = $2
		ORDER BY w.added_at, c.id;`

	rows, err := r.Pool.Query(ctx, query, windowSeconds(changeWindow), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist snapshots for user %d: %w", userID, err)
	}
	return collectSnapshots(rows)
}

// AddEntry follows currencyID for userID. added is false when already followed.
func (r *PgxWatchlistRepository) AddEntry(ctx context.Context, userID, currencyID int64) (bool, error) {
	query := `
		INSERT INTO watchlists (user_id, currency_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, currency_id) DO NOTHING;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, currencyID)
	if err != nil {
		if hasPgCode(err, pgForeignKeyViolation) {
			return false, fmt.Errorf("currency %d or user %d: %w", currencyID, userID, apperrors.ErrNotFound)
		}
		return false, fmt.Errorf("failed to add watchlist entry: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// RemoveEntry unfollows currencyID for userID. removed is false when no entry existed.
func (r *PgxWatchlistRepository) RemoveEntry(ctx context.Context, userID, currencyID int64) (bool, error) {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM watchlists WHERE user_id = $1 AND currency_id = $2;`,
		userID, currencyID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove watchlist entry: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
