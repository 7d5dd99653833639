package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/apperrors"
	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/price_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
)

const (
	msgCurrencyNotFound     = "Currency not found"
	msgCurrencyNotInWatched = "Currency is not in your watchlist"
)

// watchlistService implements the WatchlistSvcFacade interface
type watchlistService struct {
	BaseService
	watchlistRepo portsrepo.WatchlistRepositoryFacade
	currencyRepo  portsrepo.CurrencyReader
	changeWindow  time.Duration
}

// WatchlistServiceOption is a functional option for configuring the watchlist service
type WatchlistServiceOption func(*watchlistService)

// WithWatchlistChangeWindow overrides DefaultChangeWindow.
func WithWatchlistChangeWindow(d time.Duration) WatchlistServiceOption {
	return func(s *watchlistService) {
		if d > 0 {
			s.changeWindow = d
		}
	}
}

// NewWatchlistService creates a new watchlist service with the provided options
func NewWatchlistService(repo portsrepo.WatchlistRepositoryFacade, currencyRepo portsrepo.CurrencyReader, options ...WatchlistServiceOption) portssvc.WatchlistSvcFacade {
	svc := &watchlistService{
		watchlistRepo: repo,
		currencyRepo:  currencyRepo,
		changeWindow:  DefaultChangeWindow,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.WatchlistSvcFacade = (*watchlistService)(nil)

func (s *watchlistService) ListWatchlist(ctx context.Context, userID int64) ([]domain.PriceRecord, error) {
	snapshots, err := s.watchlistRepo.ListWatchlistSnapshots(ctx, userID, s.changeWindow)
	if err != nil {
		s.LogError(ctx, err, "Failed to list watchlist", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	return domain.ProjectAll(snapshots), nil
}

func (s *watchlistService) AddToWatchlist(ctx context.Context, userID, currencyID int64) (bool, error) {
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, apperrors.NewNotFoundError(msgCurrencyNotFound)
		}
		s.LogError(ctx, err, "Failed to look up currency", slog.Int64("currency_id", currencyID))
		return false, fmt.Errorf("failed to look up currency: %w", err)
	}

	added, err := s.watchlistRepo.AddEntry(ctx, userID, currencyID)
	if err != nil {
		// The currency can vanish between the lookup and the insert.
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, apperrors.NewNotFoundError(msgCurrencyNotFound)
		}
		s.LogError(ctx, err, "Failed to add watchlist entry",
			slog.Int64("user_id", userID),
			slog.Int64("currency_id", currencyID))
		return false, fmt.Errorf("failed to add to watchlist: %w", err)
	}

	s.LogDebug(ctx, "Watchlist add", slog.Int64("currency_id", currencyID), slog.Bool("added", added))
	return added, nil
}

func (s *watchlistService) RemoveFromWatchlist(ctx context.Context, userID, currencyID int64) error {
	removed, err := s.watchlistRepo.RemoveEntry(ctx, userID, currencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to remove watchlist entry",
			slog.Int64("user_id", userID),
			slog.Int64("currency_id", currencyID))
		return fmt.Errorf("failed to remove from watchlist: %w", err)
	}
	if !removed {
		return apperrors.NewNotFoundError(msgCurrencyNotInWatched)
	}
	return nil
}
