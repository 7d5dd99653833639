package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/price_tracker_app/internal/apperrors"
	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/price_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/price_tracker_app/internal/dto"
	"github.com/SscSPs/price_tracker_app/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgCredentialsRequired = "Username and password are required"
	msgPasswordTooLong     = "Password must be at most 72 bytes"
	msgUsernameTaken       = "Username is already taken"
	msgInvalidCredentials  = "Invalid username or password"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo     portsrepo.UserRepositoryFacade
	tokenService portssvc.TokenSvcFacade
}

// NewUserService creates a user service issuing tokens through tokenService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, tokenService portssvc.TokenSvcFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.AuthResult, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.NewValidationError(msgCredentialsRequired)
	}

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewDuplicateError(msgUsernameTaken)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperrors.NewValidationError(msgPasswordTooLong)
		}
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.SaveUser(ctx, domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		// Lost a race with a concurrent registration of the same name.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError(msgUsernameTaken)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", user.UserID))
	return s.issueToken(ctx, user)
}

func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*domain.AuthResult, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.NewUnauthorizedError(msgInvalidCredentials)
	}

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError(msgInvalidCredentials)
		}
		s.LogError(ctx, err, "Failed to load user for login", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.Int64("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError(msgInvalidCredentials)
	}

	return s.issueToken(ctx, user)
}

func (s *userService) issueToken(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	token, expiresAt, err := s.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.Int64("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &domain.AuthResult{
		User:        user,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
