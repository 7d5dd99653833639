package sources

import (
	"context"
	"errors"
)

// ErrFetchFailed signals that the upstream produced no usable data.
// Callers treat it as "no new data", never as fatal.
var ErrFetchFailed = errors.New("price source fetch failed")

// PriceSource fetches the current price of each configured currency code.
// Codes whose price could not be read are omitted from the result.
type PriceSource interface {
	Name() string
	Fetch(ctx context.Context) (map[string]int64, error)
}
