package models

import "database/sql"

// Currency represents a row of the currencies table.
type Currency struct {
	ID       int64          `db:"id"`
	Code     string         `db:"code"`
	Name     string         `db:"name"`
	Icon     sql.NullString `db:"icon"`
	IsActive bool           `db:"is_active"`
}
