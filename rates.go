package reeldata

import (
	"context"
	"time"
)

// RateService converts monetary amounts between currencies using a rate
// valid as of a specific date. Pinning asOf makes conversions reproducible
// across crawl runs.
type RateService interface {
	// Convert returns amount converted from one ISO currency code to
	// another at the rate valid on asOf.
	// Returns ENOTFOUND if no rate exists for the pair/date.
	Convert(ctx context.Context, from, to string, amount float64, asOf time.Time) (float64, error)
}
