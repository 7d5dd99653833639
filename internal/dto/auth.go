package dto

import "github.com/SscSPs/price_tracker_app/internal/core/domain"

// RegisterRequest defines the data needed to create a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,notblank,max=150"`
	Password string `json:"password" binding:"required,notblank,max=72"`
	Email    string `json:"email" binding:"omitempty,max=254"`
}

// LoginRequest defines the credentials for logging in.
// Blank fields are reported as bad credentials, not as a malformed request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// ToAuthResponse converts a domain.AuthResult into the response DTO
func ToAuthResponse(message string, res *domain.AuthResult) AuthResponse {
	return AuthResponse{
		Message:  message,
		Token:    res.AccessToken,
		UserID:   res.User.UserID,
		Username: res.User.Username,
	}
}
