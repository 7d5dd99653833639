package domain

import "strings"

// Currency represents a tracked currency or commodity (e.g. "usd", "gold_18").
type Currency struct {
	ID       int64   `json:"id"`
	Code     string  `json:"code"` // Unique, immutable once created
	Name     string  `json:"name"`
	Icon     *string `json:"icon,omitempty"`
	IsActive bool    `json:"isActive"`
}

// DisplayNameFromCode derives a display name for a currency first seen by the
// scraper: "gold_18" becomes "GOLD 18".
func DisplayNameFromCode(code string) string {
	return strings.ReplaceAll(strings.ToUpper(code), "_", " ")
}
