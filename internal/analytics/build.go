package analytics

import "time"

// Build derives the Context for s. Every section is computed against the
// same now, and s is not modified, so equal inputs give equal output.
func Build(s Snapshot, now time.Time) *Context {
	summary := summarize(s, now)

	return &Context{
		Now:          now,
		Accounts:     nonNil(s.Accounts),
		Transactions: nonNil(s.Transactions),
		Purchases:    nonNil(s.Purchases),
		LendBorrow:   nonNil(s.LendBorrow),
		Summary:      summary,
		Budgets:      budgetStatuses(s.Categories, summary.CategoryBreakdown),
		SavingsGoals: goalProgress(s.SavingsGoals, now),
		Investments:  portfolio(s.InvestmentAssets),
		Analytics:    metrics(s, summary, now),
		Currencies:   currencyBreakdown(s.Accounts, s.Transactions),
	}
}

func nonNil[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
