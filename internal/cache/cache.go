package cache

import (
	"context"
	"time"
)

// Cache is the shared store for rate snapshots and rendered property views.
// Lookups of absent keys return model.ErrCacheMiss.
type Cache interface {
	GetRate(ctx context.Context, code string) (float64, error)
	SetRate(ctx context.Context, code string, rate float64, expiration time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

const (
	ratePrefix     = "rates:"
	PropertyPrefix = "properties:"
)

func rateKey(code string) string {
	return ratePrefix + code
}
