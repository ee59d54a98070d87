package types

import (
	"errors"
	"time"
)

const (
	// RestPath is the PostgREST mount point on the hosted backend
	RestPath = "/rest/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "balanze-go/1.0.0"

	// DefaultCurrency is used for records that carry no currency code
	DefaultCurrency = "USD"
)

// Common errors
var (
	// ErrNotAuthenticated is returned when the API key is missing or rejected
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on timeout
	ErrTimeout = errors.New("request timeout")

	// ErrNotFound is returned when resource not found
	ErrNotFound = errors.New("resource not found")

	// ErrServerError is returned for server errors
	ErrServerError = errors.New("server error")
)
