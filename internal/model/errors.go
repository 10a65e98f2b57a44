package model

import "errors"

var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrRatesUnavailable    = errors.New("exchange rates unavailable")
	ErrCacheMiss           = errors.New("key not found")
)
