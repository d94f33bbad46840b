package mock

import (
	"context"
	"time"

	"github.com/reeldata/reeldata"
)

var _ reeldata.RateService = (*RateService)(nil)

// RateService is a mock implementation of reeldata.RateService.
type RateService struct {
	ConvertFn func(ctx context.Context, from, to string, amount float64, asOf time.Time) (float64, error)
}

func (s *RateService) Convert(ctx context.Context, from, to string, amount float64, asOf time.Time) (float64, error) {
	return s.ConvertFn(ctx, from, to, amount, asOf)
}
