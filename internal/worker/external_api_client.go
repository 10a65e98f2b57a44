package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/model"
	"github.com/hashicorp/go-retryablehttp"
)

const maxResponseBytes = 1 << 20

var _ ExternalAPIClient = (*ExchangeRateAPIClient)(nil)

// ExchangeRateAPIClient talks to a keyless USD-anchored endpoint such as
// https://open.er-api.com/v6/latest/USD.
type ExchangeRateAPIClient struct {
	url    string
	client *retryablehttp.Client
}

func NewExchangeRateAPIClient(url string, maxRetries int) *ExchangeRateAPIClient {
	rc := retryablehttp.NewClient()
	rc.RetryMax = maxRetries
	rc.RetryWaitMin = commons.ExternalClientBaseDelay
	rc.RetryWaitMax = commons.ExternalClientMaxDelay
	rc.HTTPClient.Timeout = commons.ExternalClientTimeout
	rc.Logger = nil
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &ExchangeRateAPIClient{
		url:    url,
		client: rc,
	}
}

func (c *ExchangeRateAPIClient) FetchRates(ctx context.Context) (*model.ExchangeRates, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status code: %d", resp.StatusCode)
	}

	var rates model.ExchangeRates
	err = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&rates)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &rates, nil
}

