package services

import (
	"context"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	"github.com/SscSPs/price_tracker_app/internal/dto"
)

// UserAuthSvc defines account creation and credential checks
type UserAuthSvc interface {
	// Register creates a user and issues an access token.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.AuthResult, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.AuthResult, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserAuthSvc
}
