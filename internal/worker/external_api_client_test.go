package worker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRateAPIClient_FetchRates(t *testing.T) {
	t.Run("Successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v6/latest/USD", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"result":"success","base_code":"USD","time_last_update_unix":1700000000,"rates":{"USD":1,"GHS":15.5,"GBP":"n/a"}}`))
		}))
		defer server.Close()

		client := NewExchangeRateAPIClient(server.URL+"/v6/latest/USD", 0)
		rates, err := client.FetchRates(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "success", rates.Result)
		assert.Equal(t, "USD", rates.Base)
		assert.Equal(t, int64(1700000000), rates.Timestamp)
		assert.Equal(t, 15.5, rates.Rates["GHS"])
		assert.Equal(t, "n/a", rates.Rates["GBP"])
	})

	t.Run("Non-OK status", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewExchangeRateAPIClient(server.URL, 0)
		_, err := client.FetchRates(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "API request failed with status code: 503")
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":`))
		}))
		defer server.Close()

		client := NewExchangeRateAPIClient(server.URL, 0)
		_, err := client.FetchRates(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode response")
	})

	t.Run("Unreachable host", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		client := NewExchangeRateAPIClient(url, 0)
		_, err := client.FetchRates(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send request")
	})

	t.Run("Cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewExchangeRateAPIClient(server.URL, 0)
		_, err := client.FetchRates(ctx)
		assert.Error(t, err)
	})
}
