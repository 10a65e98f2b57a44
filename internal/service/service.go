package service

import (
	"context"

	"github.com/Lutefd/estate-site/internal/model"
)

type RatesServiceInterface interface {
	EnsureLoaded(ctx context.Context) error
	Refresh(ctx context.Context) error
	Convert(amountUSD float64, code model.CurrencyCode) float64
	Format(amountUSD float64, code model.CurrencyCode) string
	Snapshot() model.RatesSnapshot
}

type PropertyServiceInterface interface {
	List(ctx context.Context, code model.CurrencyCode) ([]model.PropertyView, error)
	Get(ctx context.Context, id string, code model.CurrencyCode) (model.PropertyView, error)
	Invalidate(ctx context.Context) error
}
