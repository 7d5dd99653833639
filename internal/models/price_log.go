package models

import (
	"database/sql"
	"time"
)

// PriceLog represents a row of the price_logs table.
type PriceLog struct {
	ID         int64     `db:"id"`
	CurrencyID int64     `db:"currency_id"`
	Price      int64     `db:"price"`
	CreatedAt  time.Time `db:"created_at"`
}

// CurrencySnapshotRow is one row of the snapshot query: a currency joined with
// its latest and reference price logs. The log columns are NULL when missing.
type CurrencySnapshotRow struct {
	Currency
	LatestID        sql.NullInt64
	LatestPrice     sql.NullInt64
	LatestCreatedAt sql.NullTime
	RefID           sql.NullInt64
	RefPrice        sql.NullInt64
	RefCreatedAt    sql.NullTime
}
