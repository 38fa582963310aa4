package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go.ngs.io/surf-api/internal/domain"
)

// ConditionsProvider fetches current marine and wind conditions at a coordinate.
type ConditionsProvider interface {
	GetMarineConditions(ctx context.Context, lat, lon float64) (domain.MarineConditions, error)
	GetWindConditions(ctx context.Context, lat, lon float64) (domain.WindConditions, error)
}

// BeachLookup resolves a beach ID to its record.
type BeachLookup interface {
	Get(id string) (domain.Beach, bool)
}

// ForecastUseCase merges the marine and wind providers into a surf forecast.
type ForecastUseCase struct {
	beaches  BeachLookup
	provider ConditionsProvider
	logger   *zap.Logger
}

// NewForecastUseCase creates a new forecast use case.
func NewForecastUseCase(beaches BeachLookup, provider ConditionsProvider, logger *zap.Logger) *ForecastUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ForecastUseCase{
		beaches:  beaches,
		provider: provider,
		logger:   logger,
	}
}

// Execute returns the current forecast for the beach with the given ID.
// Both providers are queried on every call.
func (uc *ForecastUseCase) Execute(ctx context.Context, id string) (*domain.Forecast, error) {
	id = domain.NormalizeID(id)

	beach, ok := uc.beaches.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	var (
		marine domain.MarineConditions
		wind   domain.WindConditions
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		marine, err = uc.provider.GetMarineConditions(gctx, beach.Latitude, beach.Longitude)
		return err
	})
	g.Go(func() error {
		var err error
		wind, err = uc.provider.GetWindConditions(gctx, beach.Latitude, beach.Longitude)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Warn("forecast upstream failed", zap.String("beach", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch forecast for %s: %w", id, err)
	}

	uc.logger.Debug("forecast fetched",
		zap.String("beach", id),
		zap.Float64("lat", beach.Latitude),
		zap.Float64("lon", beach.Longitude),
		zap.Duration("took", time.Since(start)))

	return domain.NewForecast(beach, marine, wind), nil
}
