package balanze

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/shalconnects/balanze-go/internal/queries"
	"github.com/shalconnects/balanze-go/internal/transport"
	internalTypes "github.com/shalconnects/balanze-go/internal/types"
)

// Client reads a user's records from the hosted REST backend
type Client struct {
	baseURL     string
	transport   Transport
	options     *ClientOptions
	projections *queries.Loader
}

var _ Store = (*Client)(nil)

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL is the project URL, e.g. https://xyz.supabase.co
	BaseURL string

	// APIKey is sent as both the apikey header and the bearer token
	APIKey string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// query describes one collection read
type query struct {
	table string
	order string
}

// NewClient creates a new store client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	if opts.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: internalTypes.DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	trans := transport.NewRestTransport(&transport.Options{
		BaseURL:     opts.BaseURL,
		APIKey:      opts.APIKey,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	})

	return &Client{
		baseURL:     opts.BaseURL,
		transport:   trans,
		options:     opts,
		projections: queries.NewLoader(),
	}, nil
}

// SetAPIKey replaces the API key used for subsequent requests
func (c *Client) SetAPIKey(apiKey string) {
	c.transport.SetAuth(apiKey)
}

// loadProjection loads a column projection from the embedded filesystem
func (c *Client) loadProjection(table string) string {
	projection, err := c.projections.Load(table)
	if err != nil {
		// Projections are embedded, so this only fires for a misspelled table
		panic(fmt.Sprintf("failed to load projection %s: %v", table, err))
	}
	return projection
}

// executeSelect reads every row of q.table owned by userID into result
func (c *Client) executeSelect(ctx context.Context, q query, userID string, result interface{}) error {
	params := url.Values{}
	params.Set("select", c.loadProjection(q.table))
	params.Set("user_id", "eq."+userID)
	if q.order != "" {
		params.Set("order", q.order)
	}

	// Rate limiting
	if c.options.RateLimiter != nil {
		if err := c.options.RateLimiter.Wait(ctx); err != nil {
			if hub := sentry.GetHubFromContext(ctx); hub != nil {
				hub.CaptureException(err)
			} else {
				sentry.CaptureException(err)
			}
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	start := time.Now()
	err := c.transport.Select(ctx, q.table, params, result)
	duration := time.Since(start)

	if err != nil {
		capture := func(scope *sentry.Scope, capture func(error) *sentry.EventID) {
			scope.SetTag("store.table", q.table)
			scope.SetContext("store", map[string]interface{}{
				"table":    q.table,
				"select":   params.Get("select"),
				"order":    q.order,
				"duration": duration.String(),
			})
			capture(err)
		}
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				capture(scope, hub.CaptureException)
			})
		} else {
			sentry.WithScope(func(scope *sentry.Scope) {
				capture(scope, sentry.CaptureException)
			})
		}
	}

	return err
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}
