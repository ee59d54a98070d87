package analytics

import (
	"math"
	"time"
)

// Transaction types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Lend/borrow directions and statuses
const (
	DirectionLent     = "lent"
	DirectionBorrowed = "borrowed"
	StatusActive      = "active"
	StatusPlanned     = "planned"
)

// Snapshot is the normalized view of one user's records. Defaults are
// already applied and transfer transactions are already removed.
type Snapshot struct {
	Accounts         []Account
	Transactions     []Transaction
	Purchases        []Purchase
	LendBorrow       []LendBorrow
	SavingsGoals     []Goal
	Categories       []Category
	InvestmentAssets []Asset
}

// Account is a normalized account
type Account struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// Transaction is a normalized transaction. Amount keeps the stored sign;
// use Magnitude for expense arithmetic.
type Transaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Magnitude returns the absolute amount
func (t Transaction) Magnitude() float64 {
	return math.Abs(t.Amount)
}

// IsIncome reports whether the transaction is income
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense reports whether the transaction is an expense
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// Purchase is a normalized purchase
type Purchase struct {
	ItemName string  `json:"itemName"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
}

// LendBorrow is a normalized lend/borrow record. DueDate is zero when unset.
type LendBorrow struct {
	PersonName string    `json:"personName"`
	Amount     float64   `json:"amount"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	DueDate    time.Time `json:"dueDate"`
}

// IsActive reports whether the record is still open
func (lb LendBorrow) IsActive() bool {
	return lb.Status == StatusActive
}

// IsOverdue reports whether an open record is past its due date
func (lb LendBorrow) IsOverdue(now time.Time) bool {
	return lb.IsActive() && !lb.DueDate.IsZero() && lb.DueDate.Before(now)
}

// Goal is a normalized savings goal. TargetDate is zero when unset.
type Goal struct {
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	TargetDate    time.Time
}

// Category is a normalized category
type Category struct {
	Name          string
	MonthlyBudget float64
}

// Asset is a normalized investment asset. Value is already resolved from
// current or total value.
type Asset struct {
	Name      string
	Value     float64
	CostBasis float64
}
