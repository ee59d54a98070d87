package balanze

import (
	"context"

	"github.com/pkg/errors"
)

// ListAccounts retrieves the user's accounts
func (c *Client) ListAccounts(ctx context.Context, userID string) ([]*Account, error) {
	var result []*Account
	if err := c.executeSelect(ctx, query{table: TableAccounts}, userID, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get accounts")
	}
	return result, nil
}

// ListTransactions retrieves the user's transactions, newest first
func (c *Client) ListTransactions(ctx context.Context, userID string) ([]*Transaction, error) {
	var result []*Transaction
	q := query{table: TableTransactions, order: "created_at.desc"}
	if err := c.executeSelect(ctx, q, userID, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transactions")
	}
	return result, nil
}

// ListPurchases retrieves the user's purchases, newest first
func (c *Client) ListPurchases(ctx context.Context, userID string) ([]*Purchase, error) {
	var result []*Purchase
	q := query{table: TablePurchases, order: "created_at.desc"}
	if err := c.executeSelect(ctx, q, userID, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get purchases")
	}
	return result, nil
}

// ListLendBorrow retrieves the user's lend/borrow records
func (c *Client) ListLendBorrow(ctx context.Context, userID string) ([]*LendBorrowRecord, error) {
	var result []*LendBorrowRecord
	if err := c.executeSelect(ctx, query{table: TableLendBorrow}, userID, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get lend/borrow records")
	}
	return result, nil
}

// ListSavingsGoals retrieves the user's savings goals
func (c *Client) ListSavingsGoals(ctx context.Context, userID string) ([]*SavingsGoal, error) {
	var result []*SavingsGoal
	if err := c.executeSelect(ctx, query{table: TableSavingsGoals}, userID, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get savings goals")
	}
	return result, nil
}

// ListCategories retrieves the user's categories
func (c *Client) ListCategories(ctx context.Context, userID string) ([]*Category, error) {
	var result []*Category
	if err := c.executeSelect(ctx, query{table: TableCategories}, userID, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get categories")
	}
	return result, nil
}

// ListInvestmentAssets retrieves the user's investment assets
func (c *Client) ListInvestmentAssets(ctx context.Context, userID string) ([]*InvestmentAsset, error) {
	var result []*InvestmentAsset
	if err := c.executeSelect(ctx, query{table: TableInvestmentAssets}, userID, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get investment assets")
	}
	return result, nil
}
