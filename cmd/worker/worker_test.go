package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Lutefd/estate-site/internal/cache"
	"github.com/Lutefd/estate-site/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCache struct {
	cache.Cache
	mock.Mock
	closeCalled bool
}

func (m *mockCache) DeletePrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

func (m *mockCache) Close() error {
	m.closeCalled = true
	return nil
}

type mockLogRepository struct {
	closeCalled bool
}

func (m *mockLogRepository) SaveLog(ctx context.Context, log model.Log) error {
	return nil
}

func (m *mockLogRepository) Close() error {
	m.closeCalled = true
	return nil
}

type mockRateUpdater struct {
	startCalled  bool
	updateCalled bool
	updateErr    error
}

func (m *mockRateUpdater) Start(ctx context.Context) {
	m.startCalled = true
	<-ctx.Done()
}

func (m *mockRateUpdater) UpdateRates(ctx context.Context) error {
	m.updateCalled = true
	return m.updateErr
}

func TestRunWorker(t *testing.T) {
	tests := []struct {
		name           string
		updateErr      error
		expectedErrMsg string
		expectStart    bool
		setupContext   func() (context.Context, context.CancelFunc)
	}{
		{
			name:           "Success case",
			expectedErrMsg: "context deadline exceeded",
			expectStart:    true,
			setupContext: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 100*time.Millisecond)
			},
		},
		{
			name:           "Initial update failure keeps the schedule running",
			updateErr:      errors.New("rates unavailable"),
			expectedErrMsg: "context deadline exceeded",
			expectStart:    true,
			setupContext: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 100*time.Millisecond)
			},
		},
		{
			name:           "Context cancelled immediately",
			expectedErrMsg: "context canceled",
			expectStart:    false,
			setupContext: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, func() {}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.setupContext()
			defer cancel()

			store := &mockCache{}
			logRepo := &mockLogRepository{}
			updater := &mockRateUpdater{updateErr: tt.updateErr}
			deps := &dependencies{cache: store, logRepo: logRepo, rateUpdater: updater}

			err := runWorker(ctx, deps)

			assert.EqualError(t, err, tt.expectedErrMsg)
			assert.Equal(t, tt.expectStart, updater.startCalled)
			assert.Equal(t, tt.expectStart, updater.updateCalled)
			assert.True(t, store.closeCalled)
			assert.True(t, logRepo.closeCalled)
		})
	}
}

func TestViewInvalidator(t *testing.T) {
	store := &mockCache{}
	store.On("DeletePrefix", mock.Anything, cache.PropertyPrefix).Return(nil).Once()

	err := viewInvalidator{store: store}.Invalidate(context.Background())

	assert.NoError(t, err)
	store.AssertExpectations(t)
}
