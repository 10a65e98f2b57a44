package worker

import (
	"context"
	"fmt"

	"github.com/Lutefd/estate-site/internal/logger"
	"github.com/robfig/cron/v3"
)

// RateUpdater refreshes the live rate table on a cron schedule and drops
// anything priced with the previous table.
type RateUpdater struct {
	rates       Refresher
	invalidates []Invalidator
	schedule    string
	cron        *cron.Cron
}

func NewRateUpdater(rates Refresher, schedule string, invalidates ...Invalidator) (*RateUpdater, error) {
	ru := &RateUpdater{
		rates:       rates,
		invalidates: invalidates,
		schedule:    schedule,
		cron:        cron.New(),
	}

	if _, err := ru.cron.AddFunc(schedule, ru.updateRatesWrapper); err != nil {
		return nil, fmt.Errorf("invalid rate refresh schedule %q: %w", schedule, err)
	}
	return ru, nil
}

// Start runs the schedule until ctx is cancelled.
func (ru *RateUpdater) Start(ctx context.Context) {
	ru.cron.Start()
	logger.Infof("rate updater scheduled with %q", ru.schedule)

	<-ctx.Done()
	stopped := ru.cron.Stop()
	<-stopped.Done()
	logger.Info("Rate updater stopped")
}

// UpdateRates refreshes the table and invalidates derived views. A failed
// refresh still replaces the table with fallback rates, so views are dropped
// either way.
func (ru *RateUpdater) UpdateRates(ctx context.Context) error {
	refreshErr := ru.rates.Refresh(ctx)

	for _, inv := range ru.invalidates {
		if err := inv.Invalidate(ctx); err != nil {
			logger.Errorf("failed to invalidate cached views: %v", err)
		}
	}

	if refreshErr != nil {
		return fmt.Errorf("failed to refresh rates: %w", refreshErr)
	}
	return nil
}

func (ru *RateUpdater) updateRatesWrapper() {
	if err := ru.UpdateRates(context.Background()); err != nil {
		logger.Errorf("Error updating rates: %v", err)
	}
}
