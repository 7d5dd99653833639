package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/price_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/price_tracker_app/internal/core/ports/sources"
)

// DefaultStalenessWindow is how old the newest observation may be before a
// read triggers a refresh.
const DefaultStalenessWindow = 10 * time.Minute

// refreshService implements the RefreshSvc interface
type refreshService struct {
	BaseService
	priceRepo       portsrepo.PriceRepositoryFacade
	source          sources.PriceSource
	stalenessWindow time.Duration
	group           singleflight.Group
}

// RefreshOption is a functional option for configuring the refresh service
type RefreshOption func(*refreshService)

// WithStalenessWindow overrides DefaultStalenessWindow.
func WithStalenessWindow(d time.Duration) RefreshOption {
	return func(s *refreshService) {
		if d > 0 {
			s.stalenessWindow = d
		}
	}
}

// NewRefreshService creates a refresh service fetching from source and writing to repo.
func NewRefreshService(repo portsrepo.PriceRepositoryFacade, source sources.PriceSource, options ...RefreshOption) portssvc.RefreshSvc {
	svc := &refreshService{
		priceRepo:       repo,
		source:          source,
		stalenessWindow: DefaultStalenessWindow,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RefreshSvc = (*refreshService)(nil)

// RefreshIfStale checks the age of the newest stored observation and
// refreshes when it is at least the staleness window old. Concurrent callers
// in this process share one refresh, which is not cancelled when the caller
// that started it goes away.
func (s *refreshService) RefreshIfStale(ctx context.Context) (bool, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan("refresh-if-stale", func() (any, error) {
		return s.refreshIfStale(shared)
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return false, ctx.Err()
	}
	v, err := res.Val, res.Err
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (s *refreshService) refreshIfStale(ctx context.Context) (bool, error) {
	age, found, err := s.priceRepo.ObservationAge(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read newest observation age")
		return false, fmt.Errorf("failed to check price staleness: %w", err)
	}

	if found && age < s.stalenessWindow {
		s.LogDebug(ctx, "Prices are fresh, skipping refresh", slog.Duration("age", age))
		return false, nil
	}

	recorded, err := s.refresh(ctx)
	if err != nil {
		if errors.Is(err, sources.ErrFetchFailed) {
			s.LogWarn(ctx, err, "Price fetch failed, serving stored prices", slog.String("source", s.source.Name()))
			return false, nil
		}
		return false, err
	}
	return recorded > 0, nil
}

// Refresh fetches and stores prices regardless of staleness. Unlike
// RefreshIfStale, upstream failures are returned.
func (s *refreshService) Refresh(ctx context.Context) (int, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan("refresh", func() (any, error) {
		return s.refresh(shared)
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	v, err := res.Val, res.Err
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

func (s *refreshService) refresh(ctx context.Context) (int, error) {
	s.LogInfo(ctx, "Fetching prices", slog.String("source", s.source.Name()))

	prices, err := s.source.Fetch(ctx)
	if err != nil {
		if !errors.Is(err, sources.ErrFetchFailed) {
			err = fmt.Errorf("%w: %w", sources.ErrFetchFailed, err)
		}
		return 0, err
	}
	if len(prices) == 0 {
		s.LogInfo(ctx, "Price source returned no prices", slog.String("source", s.source.Name()))
		return 0, nil
	}

	observations, err := s.priceRepo.RecordQuotes(ctx, quotesFromPrices(prices))
	if err != nil {
		s.LogError(ctx, err, "Failed to record price quotes", slog.Int("count", len(prices)))
		return 0, fmt.Errorf("failed to record price quotes: %w", err)
	}

	s.LogInfo(ctx, "Prices updated", slog.Int("count", len(observations)))
	return len(observations), nil
}

// quotesFromPrices orders quotes by code so repeated refreshes write in a
// stable order.
func quotesFromPrices(prices map[string]int64) []domain.PriceQuote {
	quotes := make([]domain.PriceQuote, 0, len(prices))
	for code, price := range prices {
		quotes = append(quotes, domain.PriceQuote{
			Code:  code,
			Name:  domain.DisplayNameFromCode(code),
			Price: price,
		})
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Code < quotes[j].Code })
	return quotes
}
