package balanze

import (
	"context"
	"net/url"

	"github.com/shalconnects/balanze-go/internal/types"
)

// Store is the read-only view of a user's records. Every method filters by
// user_id equality.
type Store interface {
	ListAccounts(ctx context.Context, userID string) ([]*Account, error)

	// ListTransactions returns the newest records first
	ListTransactions(ctx context.Context, userID string) ([]*Transaction, error)

	// ListPurchases returns the newest records first
	ListPurchases(ctx context.Context, userID string) ([]*Purchase, error)

	ListLendBorrow(ctx context.Context, userID string) ([]*LendBorrowRecord, error)
	ListSavingsGoals(ctx context.Context, userID string) ([]*SavingsGoal, error)
	ListCategories(ctx context.Context, userID string) ([]*Category, error)
	ListInvestmentAssets(ctx context.Context, userID string) ([]*InvestmentAsset, error)
}

// Logger interface for logging
type Logger = types.Logger

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Transport handles HTTP communication with the REST interface
type Transport interface {
	Select(ctx context.Context, table string, params url.Values, result interface{}) error
	SetAuth(apiKey string)
}
