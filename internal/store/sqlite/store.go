// Package sqlite is a local balanze.Store backed by SQLite. It mirrors the
// hosted tables closely enough to replay fixtures and run offline.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/shalconnects/balanze-go/pkg/balanze"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Dates are TEXT so the driver hands back the raw string instead of time.Time
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	name TEXT,
	type TEXT,
	balance REAL,
	currency TEXT
);

CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	account_id TEXT,
	type TEXT,
	amount REAL,
	category TEXT,
	description TEXT,
	date TEXT,
	created_at TEXT,
	tags TEXT -- JSON array
);

CREATE TABLE IF NOT EXISTS purchases (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	item_name TEXT,
	amount REAL,
	price REAL,
	status TEXT,
	created_at TEXT
);

CREATE TABLE IF NOT EXISTS lend_borrow (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	person_name TEXT,
	amount REAL,
	type TEXT,
	status TEXT,
	due_date TEXT
);

CREATE TABLE IF NOT EXISTS savings_goals (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	name TEXT,
	target_amount REAL,
	current_amount REAL,
	target_date TEXT
);

CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	name TEXT,
	monthly_budget REAL
);

CREATE TABLE IF NOT EXISTS investment_assets (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	name TEXT,
	current_value REAL,
	total_value REAL,
	cost_basis REAL
);

CREATE INDEX IF NOT EXISTS idx_accounts_user ON accounts(user_id);
CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_purchases_user ON purchases(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_lend_borrow_user ON lend_borrow(user_id);
CREATE INDEX IF NOT EXISTS idx_savings_goals_user ON savings_goals(user_id);
CREATE INDEX IF NOT EXISTS idx_categories_user ON categories(user_id);
CREATE INDEX IF NOT EXISTS idx_investment_assets_user ON investment_assets(user_id);
`

// Store implements balanze.Store on a SQLite database
type Store struct {
	db *sql.DB
}

var _ balanze.Store = (*Store)(nil)

// Open creates or opens the database at path and ensures the schema exists
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	// Every connection to :memory: is a separate database
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to initialize schema")
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Records is a batch of rows for one user, shaped like the hosted JSON
type Records struct {
	Accounts         []*balanze.Account          `json:"accounts"`
	Transactions     []*balanze.Transaction      `json:"transactions"`
	Purchases        []*balanze.Purchase         `json:"purchases"`
	LendBorrow       []*balanze.LendBorrowRecord `json:"lend_borrow"`
	SavingsGoals     []*balanze.SavingsGoal      `json:"savings_goals"`
	Categories       []*balanze.Category         `json:"categories"`
	InvestmentAssets []*balanze.InvestmentAsset  `json:"investment_assets"`
}

// Seed inserts records for userID in one transaction. Rows without an id get
// a generated one; an existing id is replaced.
func (s *Store) Seed(ctx context.Context, userID string, r Records) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin seed")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, a := range r.Accounts {
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO accounts (id, user_id, name, type, balance, currency) VALUES (?, ?, ?, ?, ?, ?)`,
			rowID(a.ID), userID, a.Name, a.Type, a.Balance.Float64(), a.Currency); err != nil {
			return errors.Wrap(err, "failed to insert account")
		}
	}

	for _, t := range r.Transactions {
		tags, mErr := json.Marshal(t.Tags)
		if mErr != nil {
			return errors.Wrap(mErr, "failed to encode tags")
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO transactions (id, user_id, account_id, type, amount, category, description, date, created_at, tags)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rowID(t.ID), userID, t.AccountID, t.Type, t.Amount.Float64(), t.Category, t.Description,
			dateValue(t.Date), dateValue(t.CreatedAt), string(tags)); err != nil {
			return errors.Wrap(err, "failed to insert transaction")
		}
	}

	for _, p := range r.Purchases {
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO purchases (id, user_id, item_name, amount, price, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rowID(p.ID), userID, p.ItemName, p.Amount.Float64(), p.Price.Float64(), p.Status, dateValue(p.CreatedAt)); err != nil {
			return errors.Wrap(err, "failed to insert purchase")
		}
	}

	for _, lb := range r.LendBorrow {
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO lend_borrow (id, user_id, person_name, amount, type, status, due_date) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rowID(lb.ID), userID, lb.PersonName, lb.Amount.Float64(), lb.Type, lb.Status, dateValue(lb.DueDate)); err != nil {
			return errors.Wrap(err, "failed to insert lend/borrow record")
		}
	}

	for _, g := range r.SavingsGoals {
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO savings_goals (id, user_id, name, target_amount, current_amount, target_date) VALUES (?, ?, ?, ?, ?, ?)`,
			rowID(g.ID), userID, g.Name, g.TargetAmount.Float64(), g.CurrentAmount.Float64(), dateValue(g.TargetDate)); err != nil {
			return errors.Wrap(err, "failed to insert savings goal")
		}
	}

	for _, c := range r.Categories {
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO categories (id, user_id, name, monthly_budget) VALUES (?, ?, ?, ?)`,
			rowID(c.ID), userID, c.Name, c.MonthlyBudget.Float64()); err != nil {
			return errors.Wrap(err, "failed to insert category")
		}
	}

	for _, ia := range r.InvestmentAssets {
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO investment_assets (id, user_id, name, current_value, total_value, cost_basis) VALUES (?, ?, ?, ?, ?, ?)`,
			rowID(ia.ID), userID, ia.Name, ia.CurrentValue.Float64(), ia.TotalValue.Float64(), ia.CostBasis.Float64()); err != nil {
			return errors.Wrap(err, "failed to insert investment asset")
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit seed")
	}
	return nil
}

func rowID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func dateValue(d balanze.Date) interface{} {
	if d.IsZero() {
		return nil
	}
	return d.String()
}

// scanDate parses a nullable TEXT column; garbage becomes the zero Date
func scanDate(s sql.NullString) balanze.Date {
	if !s.Valid {
		return balanze.Date{}
	}
	d, _ := balanze.ParseDate(s.String)
	return d
}

func scanNumber(f sql.NullFloat64) balanze.Number {
	if !f.Valid {
		return 0
	}
	return balanze.Number(balanze.ParseOrDefault(f.Float64))
}

func (s *Store) query(ctx context.Context, table, q string, userID string) (*sql.Rows, error) {
	rows, err := s.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to query %s", table))
	}
	return rows, nil
}
