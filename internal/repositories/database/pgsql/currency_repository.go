package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/price_tracker_app/internal/apperrors"
	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/price_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/price_tracker_app/internal/models"
	"github.com/SscSPs/price_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// FindCurrencyByID retrieves a currency by its ID regardless of its active flag.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `
		SELECT id, code, name, icon, is_active
		FROM currencies
		WHERE id = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyID).Scan(
		&modelCurr.ID,
		&modelCurr.Code,
		&modelCurr.Name,
		&modelCurr.Icon,
		&modelCurr.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", currencyID, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}
