package aggregator

import (
	"strings"
	"time"

	"github.com/shalconnects/balanze-go/internal/analytics"
	"github.com/shalconnects/balanze-go/internal/types"
	"github.com/shalconnects/balanze-go/pkg/balanze"
)

// Raw holds the collections exactly as the store returned them
type Raw struct {
	Accounts         []*balanze.Account
	Transactions     []*balanze.Transaction
	Purchases        []*balanze.Purchase
	LendBorrow       []*balanze.LendBorrowRecord
	SavingsGoals     []*balanze.SavingsGoal
	Categories       []*balanze.Category
	InvestmentAssets []*balanze.InvestmentAsset
}

// Normalize applies defaults, drops transfers and places dates in loc.
// Nil rows are skipped.
func Normalize(raw Raw, loc *time.Location) analytics.Snapshot {
	s := analytics.Snapshot{
		Accounts:         make([]analytics.Account, 0, len(raw.Accounts)),
		Transactions:     make([]analytics.Transaction, 0, len(raw.Transactions)),
		Purchases:        make([]analytics.Purchase, 0, len(raw.Purchases)),
		LendBorrow:       make([]analytics.LendBorrow, 0, len(raw.LendBorrow)),
		SavingsGoals:     make([]analytics.Goal, 0, len(raw.SavingsGoals)),
		Categories:       make([]analytics.Category, 0, len(raw.Categories)),
		InvestmentAssets: make([]analytics.Asset, 0, len(raw.InvestmentAssets)),
	}

	for _, a := range raw.Accounts {
		if a == nil {
			continue
		}
		s.Accounts = append(s.Accounts, analytics.Account{
			ID:       a.ID,
			Name:     orDefault(a.Name, "Unnamed Account"),
			Type:     orDefault(a.Type, "other"),
			Balance:  a.Balance.Float64(),
			Currency: orDefault(a.Currency, types.DefaultCurrency),
		})
	}

	for _, t := range raw.Transactions {
		if t == nil || IsTransfer(t.Tags) {
			continue
		}
		s.Transactions = append(s.Transactions, analytics.Transaction{
			ID:          t.ID,
			AccountID:   t.AccountID,
			Type:        orDefault(t.Type, analytics.TypeExpense),
			Amount:      t.Amount.Float64(),
			Category:    orDefault(t.Category, "Uncategorized"),
			Description: orDefault(t.Description, "No description"),
			Date:        effectiveDate(t, loc),
		})
	}

	for _, p := range raw.Purchases {
		if p == nil {
			continue
		}
		amount := p.Amount.Float64()
		if amount == 0 {
			amount = p.Price.Float64()
		}
		s.Purchases = append(s.Purchases, analytics.Purchase{
			ItemName: orDefault(p.ItemName, "Unnamed Item"),
			Amount:   amount,
			Status:   orDefault(p.Status, "purchased"),
		})
	}

	for _, lb := range raw.LendBorrow {
		if lb == nil {
			continue
		}
		s.LendBorrow = append(s.LendBorrow, analytics.LendBorrow{
			PersonName: orDefault(lb.PersonName, "Unknown"),
			Amount:     lb.Amount.Float64(),
			Type:       orDefault(lb.Type, analytics.DirectionLent),
			Status:     orDefault(lb.Status, analytics.StatusActive),
			DueDate:    lb.DueDate.In(loc),
		})
	}

	for _, g := range raw.SavingsGoals {
		if g == nil {
			continue
		}
		s.SavingsGoals = append(s.SavingsGoals, analytics.Goal{
			Name:          orDefault(g.Name, "Unnamed Goal"),
			TargetAmount:  g.TargetAmount.Float64(),
			CurrentAmount: g.CurrentAmount.Float64(),
			TargetDate:    g.TargetDate.In(loc),
		})
	}

	for _, c := range raw.Categories {
		if c == nil {
			continue
		}
		s.Categories = append(s.Categories, analytics.Category{
			Name:          orDefault(c.Name, "Uncategorized"),
			MonthlyBudget: c.MonthlyBudget.Float64(),
		})
	}

	for _, a := range raw.InvestmentAssets {
		if a == nil {
			continue
		}
		value := a.CurrentValue.Float64()
		if value == 0 {
			value = a.TotalValue.Float64()
		}
		s.InvestmentAssets = append(s.InvestmentAssets, analytics.Asset{
			Name:      a.Name,
			Value:     value,
			CostBasis: a.CostBasis.Float64(),
		})
	}

	return s
}

// IsTransfer reports whether any tag marks the transaction as a transfer
// between the user's own accounts, e.g. "transfer" or "dps_transfer"
func IsTransfer(tags []string) bool {
	for _, tag := range tags {
		if strings.Contains(tag, "transfer") {
			return true
		}
	}
	return false
}

// effectiveDate prefers the booking date and falls back to the creation time
func effectiveDate(t *balanze.Transaction, loc *time.Location) time.Time {
	if !t.Date.IsZero() {
		return t.Date.In(loc)
	}
	return t.CreatedAt.In(loc)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
