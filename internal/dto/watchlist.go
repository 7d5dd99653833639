package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// WatchlistRequest identifies the currency to add to or remove from a watchlist.
type WatchlistRequest struct {
	CurrencyID FlexibleID `json:"currency_id" binding:"required"`
}

// FlexibleID accepts a JSON number or a numeric string ("3" and 3 are equal).
type FlexibleID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", string(data), err)
	}
	*id = FlexibleID(v)
	return nil
}

// Int64 returns the ID as int64.
func (id FlexibleID) Int64() int64 {
	return int64(id)
}
