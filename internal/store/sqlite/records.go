package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/shalconnects/balanze-go/pkg/balanze"
)

// ListAccounts returns the user's accounts in insertion order
func (s *Store) ListAccounts(ctx context.Context, userID string) ([]*balanze.Account, error) {
	rows, err := s.query(ctx, balanze.TableAccounts,
		`SELECT id, name, type, balance, currency FROM accounts WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*balanze.Account
	for rows.Next() {
		var (
			a                   balanze.Account
			name, typ, currency sql.NullString
			balance             sql.NullFloat64
		)
		if err := rows.Scan(&a.ID, &name, &typ, &balance, &currency); err != nil {
			return nil, errors.Wrap(err, "failed to scan account")
		}
		a.UserID = userID
		a.Name, a.Type, a.Currency = name.String, typ.String, currency.String
		a.Balance = scanNumber(balance)
		out = append(out, &a)
	}
	return out, errors.Wrap(rows.Err(), "failed to read accounts")
}

// ListTransactions returns the newest transactions first
func (s *Store) ListTransactions(ctx context.Context, userID string) ([]*balanze.Transaction, error) {
	rows, err := s.query(ctx, balanze.TableTransactions,
		`SELECT id, account_id, type, amount, category, description, date, created_at, tags
		 FROM transactions WHERE user_id = ? ORDER BY created_at DESC, rowid`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*balanze.Transaction
	for rows.Next() {
		var (
			t                                           balanze.Transaction
			accountID, typ, category, description, tags sql.NullString
			date, createdAt                             sql.NullString
			amount                                      sql.NullFloat64
		)
		if err := rows.Scan(&t.ID, &accountID, &typ, &amount, &category, &description, &date, &createdAt, &tags); err != nil {
			return nil, errors.Wrap(err, "failed to scan transaction")
		}
		t.UserID = userID
		t.AccountID, t.Type, t.Category, t.Description = accountID.String, typ.String, category.String, description.String
		t.Amount = scanNumber(amount)
		t.Date, t.CreatedAt = scanDate(date), scanDate(createdAt)
		if tags.Valid && tags.String != "" {
			// text that is not JSON at all counts as untagged
			if err := json.Unmarshal([]byte(tags.String), &t.Tags); err != nil {
				t.Tags = nil
			}
		}
		out = append(out, &t)
	}
	return out, errors.Wrap(rows.Err(), "failed to read transactions")
}

// ListPurchases returns the newest purchases first
func (s *Store) ListPurchases(ctx context.Context, userID string) ([]*balanze.Purchase, error) {
	rows, err := s.query(ctx, balanze.TablePurchases,
		`SELECT id, item_name, amount, price, status, created_at
		 FROM purchases WHERE user_id = ? ORDER BY created_at DESC, rowid`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*balanze.Purchase
	for rows.Next() {
		var (
			p                         balanze.Purchase
			itemName, status, created sql.NullString
			amount, price             sql.NullFloat64
		)
		if err := rows.Scan(&p.ID, &itemName, &amount, &price, &status, &created); err != nil {
			return nil, errors.Wrap(err, "failed to scan purchase")
		}
		p.UserID = userID
		p.ItemName, p.Status = itemName.String, status.String
		p.Amount, p.Price = scanNumber(amount), scanNumber(price)
		p.CreatedAt = scanDate(created)
		out = append(out, &p)
	}
	return out, errors.Wrap(rows.Err(), "failed to read purchases")
}

// ListLendBorrow returns the user's lend/borrow records
func (s *Store) ListLendBorrow(ctx context.Context, userID string) ([]*balanze.LendBorrowRecord, error) {
	rows, err := s.query(ctx, balanze.TableLendBorrow,
		`SELECT id, person_name, amount, type, status, due_date FROM lend_borrow WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*balanze.LendBorrowRecord
	for rows.Next() {
		var (
			lb                       balanze.LendBorrowRecord
			person, typ, status, due sql.NullString
			amount                   sql.NullFloat64
		)
		if err := rows.Scan(&lb.ID, &person, &amount, &typ, &status, &due); err != nil {
			return nil, errors.Wrap(err, "failed to scan lend/borrow record")
		}
		lb.UserID = userID
		lb.PersonName, lb.Type, lb.Status = person.String, typ.String, status.String
		lb.Amount = scanNumber(amount)
		lb.DueDate = scanDate(due)
		out = append(out, &lb)
	}
	return out, errors.Wrap(rows.Err(), "failed to read lend/borrow records")
}

// ListSavingsGoals returns the user's savings goals
func (s *Store) ListSavingsGoals(ctx context.Context, userID string) ([]*balanze.SavingsGoal, error) {
	rows, err := s.query(ctx, balanze.TableSavingsGoals,
		`SELECT id, name, target_amount, current_amount, target_date FROM savings_goals WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*balanze.SavingsGoal
	for rows.Next() {
		var (
			g               balanze.SavingsGoal
			name, target    sql.NullString
			amount, current sql.NullFloat64
		)
		if err := rows.Scan(&g.ID, &name, &amount, &current, &target); err != nil {
			return nil, errors.Wrap(err, "failed to scan savings goal")
		}
		g.UserID = userID
		g.Name = name.String
		g.TargetAmount, g.CurrentAmount = scanNumber(amount), scanNumber(current)
		g.TargetDate = scanDate(target)
		out = append(out, &g)
	}
	return out, errors.Wrap(rows.Err(), "failed to read savings goals")
}

// ListCategories returns the user's categories
func (s *Store) ListCategories(ctx context.Context, userID string) ([]*balanze.Category, error) {
	rows, err := s.query(ctx, balanze.TableCategories,
		`SELECT id, name, monthly_budget FROM categories WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*balanze.Category
	for rows.Next() {
		var (
			c      balanze.Category
			name   sql.NullString
			budget sql.NullFloat64
		)
		if err := rows.Scan(&c.ID, &name, &budget); err != nil {
			return nil, errors.Wrap(err, "failed to scan category")
		}
		c.UserID = userID
		c.Name = name.String
		c.MonthlyBudget = scanNumber(budget)
		out = append(out, &c)
	}
	return out, errors.Wrap(rows.Err(), "failed to read categories")
}

// ListInvestmentAssets returns the user's investment assets
func (s *Store) ListInvestmentAssets(ctx context.Context, userID string) ([]*balanze.InvestmentAsset, error) {
	rows, err := s.query(ctx, balanze.TableInvestmentAssets,
		`SELECT id, name, current_value, total_value, cost_basis FROM investment_assets WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*balanze.InvestmentAsset
	for rows.Next() {
		var (
			ia                    balanze.InvestmentAsset
			name                  sql.NullString
			current, total, basis sql.NullFloat64
		)
		if err := rows.Scan(&ia.ID, &name, &current, &total, &basis); err != nil {
			return nil, errors.Wrap(err, "failed to scan investment asset")
		}
		ia.UserID = userID
		ia.Name = name.String
		ia.CurrentValue, ia.TotalValue, ia.CostBasis = scanNumber(current), scanNumber(total), scanNumber(basis)
		out = append(out, &ia)
	}
	return out, errors.Wrap(rows.Err(), "failed to read investment assets")
}
