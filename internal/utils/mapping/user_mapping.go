package mapping

import (
	"database/sql"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	"github.com/SscSPs/price_tracker_app/internal/models"
)

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.ID,
		Username:     m.Username,
		Email:        m.Email.String,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		ID:           d.UserID,
		Username:     d.Username,
		Email:        sql.NullString{String: d.Email, Valid: d.Email != ""},
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}
