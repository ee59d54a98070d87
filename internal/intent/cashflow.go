package intent

import (
	"fmt"
	"strings"

	"github.com/shalconnects/balanze-go/internal/analytics"
	"github.com/shalconnects/balanze-go/internal/format"
)

func balance(q Query) string {
	ctx := q.Context
	if len(ctx.Accounts) == 0 {
		return "You don't have any accounts set up yet. Add an account to start tracking your balance!"
	}

	lines := make([]string, 0, len(ctx.Accounts))
	for _, a := range ctx.Accounts {
		lines = append(lines, fmt.Sprintf("💰 %s: %s", a.Name, format.Signed(a.Balance, a.Currency)))
	}

	return fmt.Sprintf("Here's your account balance:\n\n%s\n\n💵 Total Balance: %s",
		strings.Join(lines, "\n"),
		format.Signed(ctx.Summary.TotalBalance, ctx.Summary.PrimaryCurrency))
}

func income(q Query) string {
	txs := filter(q.Context.Transactions, analytics.Transaction.IsIncome)

	if q.Range != nil {
		window := q.windowed(txs)
		if len(window) == 0 {
			return fmt.Sprintf("You didn't record any income in %s.", strings.ToLower(q.Range.Label))
		}
		total := 0.0
		for _, t := range window {
			total += t.Amount
		}
		return fmt.Sprintf("Your income in %s was %s. You had %d income %s.",
			strings.ToLower(q.Range.Label), q.money(total), len(window), format.Plural(len(window), "transaction"))
	}

	if len(txs) == 0 {
		return "You haven't recorded any income yet. Add an income transaction to start tracking!"
	}
	return fmt.Sprintf("Your total income is %s. You have %d income %s recorded.",
		q.money(q.Context.Summary.TotalIncome), len(txs), format.Plural(len(txs), "transaction"))
}

func topCategories(q Query) string {
	list := q.categoryTable(5)
	if list == "" {
		return "You don't have enough spending data yet to show top categories."
	}
	return "Here are your top spending categories:\n\n" + list
}

func categoryBreakdown(q Query) string {
	list := q.categoryTable(10)
	if list == "" {
		return "You don't have any spending by category yet. Add some expense transactions to see category breakdown!"
	}
	return "Here's your spending by category:\n\n" + list
}

// categoryTable ranks the n largest categories with their share of all expenses
func (q Query) categoryTable(n int) string {
	summary := q.Context.Summary
	top := summary.CategoryBreakdown.Top(n)
	lines := make([]string, 0, len(top))
	for i, c := range top {
		share := 0.0
		if summary.TotalExpenses > 0 {
			share = c.Amount / summary.TotalExpenses * 100
		}
		lines = append(lines, fmt.Sprintf("%d. 📊 %s: %s (%s%%)", i+1, c.Category, q.money(c.Amount), format.Percent(share)))
	}
	return strings.Join(lines, "\n")
}

// categorySpend answers "spent on <category>" questions. It declines when the
// phrase names no known category so the general expense rule can answer.
func categorySpend(q Query, match []string) (string, bool) {
	if len(match) < 4 {
		return "", false
	}
	name := strings.TrimSpace(match[3])
	if len(name) <= 2 {
		return "", false
	}

	for _, c := range q.Context.Summary.CategoryBreakdown {
		category := strings.ToLower(c.Category)
		if strings.Contains(category, name) || strings.Contains(name, category) {
			return fmt.Sprintf("You've spent %s on %s.", q.money(c.Amount), c.Category), true
		}
	}
	return "", false
}

func expenses(q Query) string {
	txs := filter(q.Context.Transactions, analytics.Transaction.IsExpense)

	if q.Range != nil {
		window := q.windowed(txs)
		if len(window) == 0 {
			return fmt.Sprintf("You didn't record any expenses in %s.", strings.ToLower(q.Range.Label))
		}
		return fmt.Sprintf("In %s, you spent %s. You had %d expense %s.",
			strings.ToLower(q.Range.Label), q.money(magnitude(window)), len(window), format.Plural(len(window), "transaction"))
	}

	if len(txs) == 0 {
		return "You haven't recorded any expenses yet. Add an expense transaction to start tracking!"
	}
	return fmt.Sprintf("Your total expenses are %s. You have %d expense %s recorded.",
		q.money(q.Context.Summary.TotalExpenses), len(txs), format.Plural(len(txs), "transaction"))
}

func net(q Query) string {
	amount := q.Context.Summary.NetAmount
	switch {
	case amount > 0:
		return fmt.Sprintf("Great news! You have a positive net amount of %s. That means you're saving money! 💰", q.money(amount))
	case amount < 0:
		return fmt.Sprintf("Your net amount is %s in the negative. Consider reviewing your expenses to improve your financial health.", q.money(amount))
	default:
		return fmt.Sprintf("Your income and expenses are balanced at %s.", q.money(0))
	}
}

func periodSpending(q Query) string {
	summary := q.Context.Summary
	lastMonth := ""
	if summary.LastMonthExpenses > 0 {
		lastMonth = fmt.Sprintf(" Last month you spent %s.", q.money(summary.LastMonthExpenses))
	}

	if q.Range != nil {
		window := q.windowed(filter(q.Context.Transactions, analytics.Transaction.IsExpense))
		if len(window) == 0 {
			return fmt.Sprintf("You didn't record any expenses in %s.", strings.ToLower(q.Range.Label))
		}
		comparison := ""
		if q.Range.Label == "This Month" {
			comparison = lastMonth
		}
		return fmt.Sprintf("In %s, you spent %s.%s", strings.ToLower(q.Range.Label), q.money(magnitude(window)), comparison)
	}

	return fmt.Sprintf("This month, you've spent %s.%s", q.money(summary.ThisMonthExpenses), lastMonth)
}

func accounts(q Query) string {
	list := q.Context.Accounts
	if len(list) == 0 {
		return "You don't have any accounts yet. Add an account to get started!"
	}

	lines := make([]string, 0, len(list))
	for _, a := range list {
		lines = append(lines, fmt.Sprintf("🏦 %s (%s): %s", a.Name, a.Type, format.Signed(a.Balance, a.Currency)))
	}
	return fmt.Sprintf("You have %d %s:\n\n%s", len(list), format.Plural(len(list), "account"), strings.Join(lines, "\n"))
}

func transactionCount(q Query) string {
	txs := q.Context.Transactions
	return fmt.Sprintf("You have %d transactions recorded. (%d income, %d expenses)",
		q.Context.Summary.TransactionCount,
		len(filter(txs, analytics.Transaction.IsIncome)),
		len(filter(txs, analytics.Transaction.IsExpense)))
}

func recent(q Query) string {
	txs := q.Context.Transactions
	if len(txs) == 0 {
		return "You don't have any transactions yet."
	}
	if len(txs) > 5 {
		txs = txs[:5]
	}

	lines := make([]string, 0, len(txs))
	for _, t := range txs {
		icon, sign := "💸", "-"
		if t.IsIncome() {
			icon, sign = "💰", "+"
		}
		lines = append(lines, fmt.Sprintf("%s %s: %s%s (%s)", icon, t.Description, sign, q.money(t.Amount), t.Category))
	}
	return "Here are your recent transactions:\n\n" + strings.Join(lines, "\n")
}

// windowed keeps the transactions dated inside the query's range
func (q Query) windowed(txs []analytics.Transaction) []analytics.Transaction {
	return filter(txs, func(t analytics.Transaction) bool {
		return q.Range.Contains(t.Date)
	})
}

func filter(txs []analytics.Transaction, keep func(analytics.Transaction) bool) []analytics.Transaction {
	var out []analytics.Transaction
	for _, t := range txs {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func magnitude(txs []analytics.Transaction) float64 {
	total := 0.0
	for _, t := range txs {
		total += t.Magnitude()
	}
	return total
}
