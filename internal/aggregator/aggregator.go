// Package aggregator fetches a user's records and turns them into an
// analytics Context.
package aggregator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/shalconnects/balanze-go/internal/analytics"
	"github.com/shalconnects/balanze-go/internal/types"
	"github.com/shalconnects/balanze-go/pkg/balanze"
)

// Aggregator builds Contexts from a Store
type Aggregator struct {
	store  balanze.Store
	logger types.Logger
}

// New creates an Aggregator. logger may be nil.
func New(store balanze.Store, logger types.Logger) *Aggregator {
	return &Aggregator{
		store:  store,
		logger: types.OrNop(logger),
	}
}

// Aggregate fetches every collection for userID and builds the Context at
// now. It never fails: a collection that cannot be fetched counts as empty,
// and an unexpected panic yields analytics.Empty.
func (a *Aggregator) Aggregate(ctx context.Context, userID string, now time.Time) (result *analytics.Context) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("aggregation panic: %v", r)
			a.logger.Error("Failed to gather user context", "userId", userID, "error", err)
			captureException(ctx, err, userID)
			result = analytics.Empty(now)
		}
	}()

	raw := a.Fetch(ctx, userID)
	return analytics.Build(Normalize(raw, now.Location()), now)
}

// Fetch reads every collection in balanze.Tables concurrently. A collection
// whose read fails is logged and left empty, even if the store returned some
// rows alongside the error.
func (a *Aggregator) Fetch(ctx context.Context, userID string) Raw {
	var (
		raw Raw
		wg  sync.WaitGroup
	)

	loaders := map[string]func() error{
		balanze.TableAccounts: func() error {
			rows, err := a.store.ListAccounts(ctx, userID)
			if err == nil {
				raw.Accounts = rows
			}
			return err
		},
		balanze.TableTransactions: func() error {
			rows, err := a.store.ListTransactions(ctx, userID)
			if err == nil {
				raw.Transactions = rows
			}
			return err
		},
		balanze.TablePurchases: func() error {
			rows, err := a.store.ListPurchases(ctx, userID)
			if err == nil {
				raw.Purchases = rows
			}
			return err
		},
		balanze.TableLendBorrow: func() error {
			rows, err := a.store.ListLendBorrow(ctx, userID)
			if err == nil {
				raw.LendBorrow = rows
			}
			return err
		},
		balanze.TableSavingsGoals: func() error {
			rows, err := a.store.ListSavingsGoals(ctx, userID)
			if err == nil {
				raw.SavingsGoals = rows
			}
			return err
		},
		balanze.TableCategories: func() error {
			rows, err := a.store.ListCategories(ctx, userID)
			if err == nil {
				raw.Categories = rows
			}
			return err
		},
		balanze.TableInvestmentAssets: func() error {
			rows, err := a.store.ListInvestmentAssets(ctx, userID)
			if err == nil {
				raw.InvestmentAssets = rows
			}
			return err
		},
	}

	for _, table := range balanze.Tables {
		load, ok := loaders[table]
		if !ok {
			a.logger.Error("No loader for collection", "collection", table)
			continue
		}
		wg.Add(1)
		go func(collection string, load func() error) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					a.logger.Error("Collection fetch panicked", "collection", collection, "userId", userID, "panic", r)
				}
			}()
			if err := load(); err != nil {
				a.logger.Warn("Failed to fetch collection", "collection", collection, "userId", userID, "error", err)
			}
		}(table, load)
	}

	wg.Wait()

	a.logger.Debug("User context gathered",
		"userId", userID,
		"accountCount", len(raw.Accounts),
		"transactionCount", len(raw.Transactions))

	return raw
}

func captureException(ctx context.Context, err error, userID string) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "aggregator")
		scope.SetUser(sentry.User{ID: userID})
		hub.CaptureException(err)
	})
}
