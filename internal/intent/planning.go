package intent

import (
	"fmt"
	"math"
	"strings"

	"github.com/shalconnects/balanze-go/internal/analytics"
	"github.com/shalconnects/balanze-go/internal/format"
)

// Velocity bands relative to the elapsed share of the month
const (
	fastPace = 1.2
	slowPace = 0.8
)

func budget(q Query) string {
	budgets := q.Context.Budgets
	if len(budgets) == 0 {
		return "You don't have any budgets set up yet. Set monthly budgets for categories to track your spending!"
	}

	var over, near, under []string
	for _, b := range budgets {
		switch b.State() {
		case analytics.BudgetOver:
			over = append(over, fmt.Sprintf("%s: %s spent (%s budget) - Over by %s",
				b.Category, q.money(b.Spent), q.money(b.Budget), q.money(b.Remaining())))
		case analytics.BudgetNearLimit:
			near = append(near, fmt.Sprintf("%s: %s / %s (%s%%)",
				b.Category, q.money(b.Spent), q.money(b.Budget), format.Percent(b.Percentage())))
		default:
			under = append(under, fmt.Sprintf("%s: %s remaining (%s%% used)",
				b.Category, q.money(b.Remaining()), format.Percent(b.Percentage())))
		}
	}

	sections := []string{"Here's your budget status:"}
	sections = appendSection(sections, "⚠️ Over Budget:", over)
	sections = appendSection(sections, "📊 On Track (80%+):", near)
	sections = appendSection(sections, "✅ Under Budget:", under)
	return strings.Join(sections, "\n\n")
}

func appendSection(sections []string, header string, items []string) []string {
	if len(items) == 0 {
		return sections
	}
	return append(sections, header+"\n• "+strings.Join(items, "\n• "))
}

func goals(q Query) string {
	list := q.Context.SavingsGoals
	if len(list) == 0 {
		return "You don't have any savings goals set up yet. Create a savings goal to track your progress!"
	}

	blocks := make([]string, 0, len(list))
	for _, g := range list {
		status := fmt.Sprintf("%d days left", g.DaysRemaining)
		switch {
		case g.Completed():
			status = "✅ Completed!"
		case g.TargetDate == nil:
			status = "No target date"
		case g.Overdue():
			status = "⚠️ Overdue"
		}
		blocks = append(blocks, fmt.Sprintf("🎯 %s:\n   Progress: %s %s%%\n   %s / %s\n   Remaining: %s\n   %s",
			g.Name,
			format.ProgressBar(g.Progress), format.Percent(g.Progress),
			q.money(g.CurrentAmount), q.money(g.TargetAmount),
			q.money(math.Max(0, g.Remaining)),
			status))
	}
	return "Here's your savings goals progress:\n\n" + strings.Join(blocks, "\n\n")
}

func investments(q Query) string {
	inv := q.Context.Investments
	if inv.AssetCount == 0 {
		return "You don't have any investments recorded yet. Add investment assets to track your portfolio!"
	}

	icon, word := "📈", "gain"
	if inv.TotalGainLoss < 0 {
		icon, word = "📉", "loss"
	}

	return fmt.Sprintf("Here's your investment portfolio:\n\n"+
		"💰 Portfolio Value: %s\n"+
		"💵 Cost Basis: %s\n"+
		"%s Total %s: %s\n"+
		"📊 Return: %.2f%%\n"+
		"🏦 Assets: %d",
		q.money(inv.TotalPortfolioValue), q.money(inv.TotalCostBasis),
		icon, word, q.money(inv.TotalGainLoss),
		inv.ReturnPercentage, inv.AssetCount)
}

func trends(q Query) string {
	s := q.Context.Summary
	if s.LastMonthExpenses == 0 && s.ThisMonthExpenses == 0 {
		return "You don't have enough spending data to compare months yet."
	}

	difference := s.ThisMonthExpenses - s.LastMonthExpenses
	change := 0.0
	if s.LastMonthExpenses > 0 {
		change = difference / s.LastMonthExpenses * 100
	}

	var trend string
	switch {
	case difference > 0:
		trend = fmt.Sprintf("📈 Your spending increased by %s (%s%%) compared to last month.", q.money(difference), format.Percent(change))
	case difference < 0:
		trend = fmt.Sprintf("📉 Great! Your spending decreased by %s (%s%%) compared to last month.", q.money(difference), format.Percent(math.Abs(change)))
	default:
		trend = "➡️ Your spending stayed the same compared to last month."
	}

	return fmt.Sprintf("Month-over-Month Comparison:\n\nThis Month: %s\nLast Month: %s\n\n%s",
		q.money(s.ThisMonthExpenses), q.money(s.LastMonthExpenses), trend)
}

func forecast(q Query) string {
	m := q.Context.Analytics
	if m.DailyAverage == 0 {
		return "I need more spending data to make accurate forecasts. Try again after recording some expenses this month."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Spending Forecast:\n\nCurrent spending: %s\nDaily average: %s\nProjected month-end: %s\nDays remaining: %d",
		q.money(q.Context.Summary.ThisMonthExpenses), q.money(m.DailyAverage), q.money(m.ProjectedMonthEnd), m.DaysLeftInMonth())

	if m.AvgMonthlySpending > 0 {
		variance := m.ProjectedMonthEnd - m.AvgMonthlySpending
		percent := variance / m.AvgMonthlySpending * 100
		if variance > 0 {
			fmt.Fprintf(&b, "\n\n⚠️ You're projected to spend %s more than your average (%s%% increase).", q.money(variance), format.Percent(percent))
		} else {
			fmt.Fprintf(&b, "\n\n✅ You're on track to spend %s less than your average (%s%% decrease).", q.money(variance), format.Percent(math.Abs(percent)))
		}
	}

	return b.String()
}

func burnRate(q Query) string {
	m := q.Context.Analytics
	if m.MonthsUntilZero == nil {
		if m.NetMonthlyRate > 0 {
			return fmt.Sprintf("✅ Great news! You're saving %s per month. Your balance is growing!", q.money(m.NetMonthlyRate))
		}
		return "I need more data to calculate your burn rate. Make sure you have income and expense transactions recorded."
	}

	months := *m.MonthsUntilZero
	return fmt.Sprintf("🔥 Burn Rate Analysis:\n\n"+
		"Current balance: %s\n"+
		"Monthly net: %s\n"+
		"⚠️ At current spending rate, you'll run out of money in approximately %d %s.\n\n"+
		"💡 Consider reducing expenses or increasing income to extend your runway.",
		format.Signed(q.Context.Summary.TotalBalance, q.Context.Summary.PrimaryCurrency),
		format.Signed(m.NetMonthlyRate, q.Context.Summary.PrimaryCurrency),
		months, format.Plural(months, "month"))
}

func anomalies(q Query) string {
	found := q.Context.Analytics.CategoryAnomalies
	if len(found) == 0 {
		return "✅ No unusual spending patterns detected this month. Your spending looks normal!"
	}

	lines := make([]string, 0, len(found))
	for _, a := range found {
		lines = append(lines, fmt.Sprintf("⚠️ %s: %s this month (avg: %s) - %s%% increase",
			a.Category, q.money(a.ThisMonth), q.money(a.AvgMonth), format.Percent(a.Increase)))
	}
	return fmt.Sprintf("🚨 Unusual Spending Detected:\n\n%s\n\n💡 These categories show significantly higher spending than your 3-month average.",
		strings.Join(lines, "\n"))
}

func velocity(q Query) string {
	m := q.Context.Analytics
	if m.DailyAverage == 0 {
		return "I need spending data from this month to calculate your spending velocity."
	}

	thisMonth := q.Context.Summary.ThisMonthExpenses
	elapsed := m.MonthProgress()
	spent := m.ShareOfAverage(thisMonth)

	var b strings.Builder
	fmt.Fprintf(&b, "⚡ Spending Velocity:\n\nDaily average: %s\nMonth progress: %s%% (day %d of %d)\nSpent so far: %s",
		q.money(m.DailyAverage), format.Percent(elapsed), m.DayOfMonth, m.DaysInMonth, q.money(thisMonth))

	if m.AvgMonthlySpending > 0 {
		switch {
		case spent > elapsed*fastPace:
			fmt.Fprintf(&b, "\n\n⚠️ You're spending faster than usual. You've used %s%% of your average monthly spending with only %s%% of the month elapsed.",
				format.Percent(spent), format.Percent(elapsed))
		case spent < elapsed*slowPace:
			b.WriteString("\n\n✅ You're spending slower than usual. Great job managing your expenses!")
		default:
			b.WriteString("\n\n➡️ Your spending pace is on track with your average.")
		}
	}

	return b.String()
}

func currencies(q Query) string {
	list := q.Context.Currencies
	if len(list) <= 1 {
		return fmt.Sprintf("You're using a single currency (%s). Multi-currency analysis is available when you have accounts in different currencies.",
			q.Context.Summary.PrimaryCurrency)
	}

	blocks := make([]string, 0, len(list))
	for _, c := range list {
		blocks = append(blocks, fmt.Sprintf("%s:\n  💰 Balance: %s\n  📈 Income: %s\n  📉 Expenses: %s\n  💵 Net: %s",
			c.Currency,
			format.Signed(c.Balance, c.Currency),
			format.Currency(c.Income, c.Currency),
			format.Currency(c.Expenses, c.Currency),
			format.Signed(c.Net(), c.Currency)))
	}
	return "🌍 Multi-Currency Breakdown:\n\n" + strings.Join(blocks, "\n\n")
}

func recommendations(q Query) string {
	ctx := q.Context
	m := ctx.Analytics
	var recs []string

	for _, b := range ctx.Budgets {
		if b.Percentage() >= 90 {
			recs = append(recs, fmt.Sprintf("⚠️ %s budget is at %s%%. Consider reducing spending or increasing budget.",
				b.Category, format.Percent(b.Percentage())))
		}
	}

	if len(m.CategoryAnomalies) > 0 {
		top := m.CategoryAnomalies[0]
		recs = append(recs, fmt.Sprintf("💡 %s spending is %s%% above average. Review recent transactions in this category.",
			top.Category, format.Percent(top.Increase)))
	}

	if m.MonthsUntilZero != nil && *m.MonthsUntilZero < 6 {
		recs = append(recs, fmt.Sprintf("🔥 Your runway is only %d %s. Focus on reducing expenses or increasing income.",
			*m.MonthsUntilZero, format.Plural(*m.MonthsUntilZero, "month")))
	}

	for _, g := range ctx.SavingsGoals {
		if g.DaysRemaining > 0 && g.DaysRemaining < 30 && g.Progress < 80 {
			perDay := g.Remaining / float64(g.DaysRemaining)
			recs = append(recs, fmt.Sprintf("🎯 \"%s\" needs %s per day to meet your target.", g.Name, q.money(perDay)))
		}
	}

	if m.AvgMonthlySpending > 0 {
		spent := m.ShareOfAverage(ctx.Summary.ThisMonthExpenses)
		elapsed := m.MonthProgress()
		if spent > elapsed*fastPace {
			recs = append(recs, fmt.Sprintf("⚡ You're spending %s%% of your monthly average with only %s%% of the month elapsed. Slow down spending to stay on track.",
				format.Percent(spent), format.Percent(elapsed)))
		}
	}

	if len(recs) == 0 {
		return "✅ Your finances look healthy! No urgent recommendations at this time. Keep up the good work! 💪"
	}

	numbered := make([]string, len(recs))
	for i, r := range recs {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, r)
	}
	return "💡 Smart Recommendations:\n\n" + strings.Join(numbered, "\n\n")
}
