package commons

import "time"

const (
	DefaultRatesAPIURL      = "https://open.er-api.com/v6/latest/USD"
	DefaultWorkerSchedule   = "@every 1h"
	RatesAdvisory           = "Unable to fetch latest rates. Showing USD values."
	AdminRPS                = 1
	AdminBurst              = 5
	APIRequestsPerMinute    = 120
	ExternalClientTimeout   = 10 * time.Second
	ExternalClientBaseDelay = time.Second
	ExternalClientMaxDelay  = 30 * time.Second
	RatesCacheExpiration    = 1 * time.Hour
	PropertyCacheExpiration = 5 * time.Minute
	ServerIdleTimeout       = time.Minute
	ServerReadTimeout       = 10 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerShutdownTimeout   = 10 * time.Second
	LoggerShutdownTimeout   = 5 * time.Second
	APIKeyHeader            = "X-API-Key"
)
