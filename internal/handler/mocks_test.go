package handler_test

import (
	"context"

	"github.com/Lutefd/estate-site/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockRatesService struct {
	mock.Mock
}

func (m *MockRatesService) EnsureLoaded(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatesService) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatesService) Convert(amountUSD float64, code model.CurrencyCode) float64 {
	args := m.Called(amountUSD, code)
	return args.Get(0).(float64)
}

func (m *MockRatesService) Format(amountUSD float64, code model.CurrencyCode) string {
	args := m.Called(amountUSD, code)
	return args.String(0)
}

func (m *MockRatesService) Snapshot() model.RatesSnapshot {
	args := m.Called()
	return args.Get(0).(model.RatesSnapshot)
}

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) List(ctx context.Context, code model.CurrencyCode) ([]model.PropertyView, error) {
	args := m.Called(ctx, code)
	if args.Get(0) != nil {
		return args.Get(0).([]model.PropertyView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPropertyService) Get(ctx context.Context, id string, code model.CurrencyCode) (model.PropertyView, error) {
	args := m.Called(ctx, id, code)
	return args.Get(0).(model.PropertyView), args.Error(1)
}

func (m *MockPropertyService) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
