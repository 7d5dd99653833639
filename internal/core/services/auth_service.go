package services

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/price_tracker_app/internal/platform/config"
	"github.com/SscSPs/price_tracker_app/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token whose subject is the user ID.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := s.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(strconv.FormatInt(user.UserID, 10), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.Int64("user_id", user.UserID))
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
