package worker

import (
	"context"

	"github.com/Lutefd/estate-site/internal/model"
)

type ExternalAPIClient interface {
	FetchRates(ctx context.Context) (*model.ExchangeRates, error)
}

// Refresher reloads the live rate table.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Invalidator drops data derived from the previous rate table.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}
