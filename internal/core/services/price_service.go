package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/price_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
)

// DefaultChangeWindow is the look-back used for the change percentage.
const DefaultChangeWindow = 24 * time.Hour

// priceService implements the PriceSvcFacade interface
type priceService struct {
	BaseService
	priceRepo    portsrepo.PriceReader
	refresher    portssvc.RefreshSvc
	changeWindow time.Duration
}

// PriceServiceOption is a functional option for configuring the price service
type PriceServiceOption func(*priceService)

// WithRefresher runs refresher before every listing.
func WithRefresher(refresher portssvc.RefreshSvc) PriceServiceOption {
	return func(s *priceService) {
		s.refresher = refresher
	}
}

// WithChangeWindow overrides DefaultChangeWindow.
func WithChangeWindow(d time.Duration) PriceServiceOption {
	return func(s *priceService) {
		if d > 0 {
			s.changeWindow = d
		}
	}
}

// NewPriceService creates a new price service with the provided options
func NewPriceService(repo portsrepo.PriceReader, options ...PriceServiceOption) portssvc.PriceSvcFacade {
	svc := &priceService{
		priceRepo:    repo,
		changeWindow: DefaultChangeWindow,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PriceSvcFacade = (*priceService)(nil)

func (s *priceService) ListPrices(ctx context.Context) ([]domain.PriceRecord, error) {
	if s.refresher != nil {
		// Stored data is still served when a refresh cannot complete.
		if _, err := s.refresher.RefreshIfStale(ctx); err != nil {
			s.LogError(ctx, err, "Price refresh failed, serving stored prices")
		}
	}

	snapshots, err := s.priceRepo.ListActiveSnapshots(ctx, s.changeWindow)
	if err != nil {
		s.LogError(ctx, err, "Failed to list price snapshots")
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	return domain.ProjectAll(snapshots), nil
}
