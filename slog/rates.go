package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/reeldata/reeldata"
)

// Ensure LoggingRateService implements reeldata.RateService.
var _ reeldata.RateService = (*LoggingRateService)(nil)

// LoggingRateService wraps a RateService with logging.
type LoggingRateService struct {
	next   reeldata.RateService
	logger *slog.Logger
}

// NewLoggingRateService creates a new LoggingRateService.
func NewLoggingRateService(next reeldata.RateService, logger *slog.Logger) *LoggingRateService {
	return &LoggingRateService{next: next, logger: logger}
}

// Convert delegates to the wrapped service and logs the operation.
func (s *LoggingRateService) Convert(ctx context.Context, from, to string, amount float64, asOf time.Time) (converted float64, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fx convert",
			"from", from,
			"to", to,
			"asOf", asOf.Format("2006-01-02"),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, from, to, amount, asOf)
}
