package analytics

import (
	"time"

	"github.com/shalconnects/balanze-go/internal/types"
)

func summarize(s Snapshot, now time.Time) Summary {
	summary := Summary{
		AccountCount:      len(s.Accounts),
		TransactionCount:  len(s.Transactions),
		CategoryBreakdown: categoryBreakdown(s.Transactions),
		PrimaryCurrency:   types.DefaultCurrency,
	}

	for _, a := range s.Accounts {
		summary.TotalBalance += a.Balance
	}
	if len(s.Accounts) > 0 && s.Accounts[0].Currency != "" {
		summary.PrimaryCurrency = s.Accounts[0].Currency
	}

	thisMonth := monthStart(now, 0)
	lastMonth := monthStart(now, -1)
	for _, t := range s.Transactions {
		switch {
		case t.IsIncome():
			summary.TotalIncome += t.Amount
		case t.IsExpense():
			summary.TotalExpenses += t.Magnitude()
			if sameMonth(t.Date, thisMonth) {
				summary.ThisMonthExpenses += t.Magnitude()
			} else if sameMonth(t.Date, lastMonth) {
				summary.LastMonthExpenses += t.Magnitude()
			}
		}
	}
	summary.NetAmount = summary.TotalIncome - summary.TotalExpenses

	return summary
}

func categoryBreakdown(txs []Transaction) Breakdown {
	breakdown := Breakdown{}
	index := map[string]int{}
	for _, t := range txs {
		if !t.IsExpense() {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(breakdown)
			index[t.Category] = i
			breakdown = append(breakdown, CategoryAmount{Category: t.Category})
		}
		breakdown[i].Amount += t.Magnitude()
	}
	return breakdown
}

// expensesIn sums expense magnitudes in the month starting at start,
// optionally restricted to one category
func expensesIn(txs []Transaction, start time.Time, category *string) float64 {
	total := 0.0
	for _, t := range txs {
		if !t.IsExpense() || !sameMonth(t.Date, start) {
			continue
		}
		if category != nil && t.Category != *category {
			continue
		}
		total += t.Magnitude()
	}
	return total
}
