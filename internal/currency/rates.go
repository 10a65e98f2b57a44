package currency

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/Lutefd/estate-site/internal/cache"
	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/logger"
	"github.com/Lutefd/estate-site/internal/model"
)

const successResult = "success"

type RatesFetcher interface {
	FetchRates(ctx context.Context) (*model.ExchangeRates, error)
}

// RateCache holds the USD-based rate table shared by every request.
// Until the first load completes every conversion is 1:1.
type RateCache struct {
	fetcher RatesFetcher
	store   cache.Cache

	once      sync.Once
	mu        sync.RWMutex
	rates     model.RateTable
	updatedAt time.Time
	err       error
}

// NewRateCache builds a cache over fetcher. store is optional; when set, complete
// snapshots are shared through it so that instances reuse one outbound fetch.
func NewRateCache(fetcher RatesFetcher, store cache.Cache) *RateCache {
	return &RateCache{
		fetcher: fetcher,
		store:   store,
		rates:   model.NewFallbackRateTable(),
	}
}

// EnsureLoaded performs the initial load exactly once; concurrent callers wait
// for that single load and observe its outcome.
func (c *RateCache) EnsureLoaded(ctx context.Context) error {
	c.once.Do(func() {
		_ = c.LoadRates(ctx)
	})
	return c.Err()
}

// LoadRates prefers a complete snapshot from the shared store and otherwise
// fetches from the exchange-rate API.
func (c *RateCache) LoadRates(ctx context.Context) error {
	if table, ok := c.fromStore(ctx); ok {
		c.set(table, time.Now(), nil)
		return nil
	}
	return c.Refresh(ctx)
}

// Refresh always goes to the exchange-rate API. A failed fetch leaves USD at 1
// and every other rate at the fallback value.
func (c *RateCache) Refresh(ctx context.Context) error {
	rates, err := c.fetcher.FetchRates(ctx)
	if err == nil && rates == nil {
		err = fmt.Errorf("empty response")
	}
	if err == nil && rates.Result != successResult {
		err = fmt.Errorf("unexpected result %q", rates.Result)
	}
	if err != nil {
		loadErr := fmt.Errorf("%w: %v", model.ErrRatesUnavailable, err)
		logger.Errorf("failed to fetch exchange rates: %v", err)
		c.set(model.NewFallbackRateTable(), time.Time{}, loadErr)
		return loadErr
	}

	table := tableFromPayload(rates.Rates)
	updatedAt := time.Now()
	if rates.Timestamp > 0 {
		updatedAt = time.Unix(rates.Timestamp, 0)
	}
	c.set(table, updatedAt, nil)
	c.persist(ctx, table)
	logger.Info("exchange rates updated")
	return nil
}

func (c *RateCache) Convert(amountUSD float64, code model.CurrencyCode) float64 {
	c.mu.RLock()
	rate := c.rates[code]
	c.mu.RUnlock()

	if rate == model.FallbackRate {
		return amountUSD
	}
	return amountUSD * rate
}

func (c *RateCache) Format(amountUSD float64, code model.CurrencyCode) string {
	return FormatAmount(c.Convert(amountUSD, code), code)
}

func (c *RateCache) Rates() model.RateTable {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rates.Clone()
}

func (c *RateCache) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Advisory is the message shown next to prices while live rates are unavailable.
func (c *RateCache) Advisory() string {
	if c.Err() != nil {
		return commons.RatesAdvisory
	}
	return ""
}

func (c *RateCache) Snapshot() model.RatesSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := model.RatesSnapshot{
		Base:      model.USD,
		Rates:     c.rates.Clone(),
		UpdatedAt: c.updatedAt,
	}
	if c.err != nil {
		snapshot.Advisory = commons.RatesAdvisory
	}
	return snapshot
}

func (c *RateCache) set(table model.RateTable, updatedAt time.Time, err error) {
	table[model.USD] = 1
	c.mu.Lock()
	c.rates = table
	c.updatedAt = updatedAt
	c.err = err
	c.mu.Unlock()
}

func (c *RateCache) fromStore(ctx context.Context) (model.RateTable, bool) {
	if c.store == nil {
		return nil, false
	}
	table := make(model.RateTable, len(model.SupportedCurrencies))
	for _, code := range model.SupportedCurrencies {
		rate, err := c.store.GetRate(ctx, string(code))
		if err != nil {
			return nil, false
		}
		table[code] = rate
	}
	return table, true
}

func (c *RateCache) persist(ctx context.Context, table model.RateTable) {
	if c.store == nil {
		return
	}
	for code, rate := range table {
		if err := c.store.SetRate(ctx, string(code), rate, commons.RatesCacheExpiration); err != nil {
			logger.Errorf("failed to cache rate %s: %v", code, err)
		}
	}
}

func tableFromPayload(raw map[string]interface{}) model.RateTable {
	table := model.NewFallbackRateTable()
	for _, code := range model.SupportedCurrencies {
		if code == model.USD {
			continue
		}
		if rate, ok := numericRate(raw[string(code)]); ok {
			table[code] = rate
		}
	}
	return table
}

func numericRate(v interface{}) (float64, bool) {
	var rate float64
	switch n := v.(type) {
	case float64:
		rate = n
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		rate = parsed
	default:
		return 0, false
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return 0, false
	}
	return rate, true
}
