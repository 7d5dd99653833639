package domain

import "time"

// User represents an account that can authenticate and own a watchlist.
type User struct {
	UserID       int64     `json:"userID"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthResult is returned by register and login: the user plus an access token.
type AuthResult struct {
	User        *User
	AccessToken string
	ExpiresAt   time.Time
}
