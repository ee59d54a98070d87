package intent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shalconnects/balanze-go/internal/analytics"
	"github.com/shalconnects/balanze-go/internal/format"
)

var (
	owedToMe = regexp.MustCompile(`\b(who.*owe|who owes|lent to)\b`)
	owedByMe = regexp.MustCompile(`\b(who.*i.*owe|i owe|borrowed from)\b`)
)

func lendBorrow(q Query) string {
	var lent, borrowed []analytics.LendBorrow
	overdue := 0
	for _, lb := range q.Context.LendBorrow {
		if !lb.IsActive() {
			continue
		}
		switch lb.Type {
		case analytics.DirectionLent:
			lent = append(lent, lb)
			if lb.IsOverdue(q.Context.Now) {
				overdue++
			}
		case analytics.DirectionBorrowed:
			borrowed = append(borrowed, lb)
		}
	}

	if len(lent) == 0 && len(borrowed) == 0 {
		return "You don't have any active lend/borrow records."
	}

	if owedToMe.MatchString(q.Lower) {
		if len(lent) == 0 {
			return "No one currently owes you money."
		}
		response := fmt.Sprintf("People who owe you money:\n\n%s\n\n💰 Total: %s", q.people(lent), q.money(total(lent)))
		if overdue > 0 {
			response += fmt.Sprintf("\n\n⚠️ Overdue: %d %s", overdue, format.Plural(overdue, "record"))
		}
		return response
	}

	if owedByMe.MatchString(q.Lower) {
		if len(borrowed) == 0 {
			return "You don't owe anyone money."
		}
		return fmt.Sprintf("People you owe money to:\n\n%s\n\n💸 Total: %s", q.people(borrowed), q.money(total(borrowed)))
	}

	var lines []string
	if len(lent) > 0 {
		lines = append(lines, fmt.Sprintf("💰 You've lent %s to %d %s.", q.money(total(lent)), len(lent), format.Plural(len(lent), "person")))
		if overdue > 0 {
			lines = append(lines, fmt.Sprintf("⚠️ %d %s overdue.", overdue, isAre(overdue)))
		}
	}
	if len(borrowed) > 0 {
		lines = append(lines, fmt.Sprintf("💸 You've borrowed %s from %d %s.", q.money(total(borrowed)), len(borrowed), format.Plural(len(borrowed), "person")))
	}
	return strings.Join(lines, "\n")
}

func (q Query) people(records []analytics.LendBorrow) string {
	lines := make([]string, 0, len(records))
	for _, lb := range records {
		lines = append(lines, fmt.Sprintf("• %s: %s", lb.PersonName, q.money(lb.Amount)))
	}
	return strings.Join(lines, "\n")
}

func total(records []analytics.LendBorrow) float64 {
	sum := 0.0
	for _, lb := range records {
		sum += lb.Amount
	}
	return sum
}

func isAre(n int) string {
	if n > 1 {
		return "are"
	}
	return "is"
}

func purchases(q Query) string {
	list := q.Context.Purchases
	if len(list) == 0 {
		return "You don't have any purchases recorded yet."
	}

	sum := 0.0
	planned := 0
	for _, p := range list {
		sum += p.Amount
		if p.Status == analytics.StatusPlanned {
			planned++
		}
	}

	response := fmt.Sprintf("You have %d %s recorded, totaling %s.", len(list), format.Plural(len(list), "purchase"), q.money(sum))
	if planned > 0 {
		response += fmt.Sprintf(" %d %s still planned.", planned, isAre(planned))
	}
	return response
}

func summary(q Query) string {
	s := q.Context.Summary
	code := s.PrimaryCurrency

	var b strings.Builder
	b.WriteString("Here's your financial summary:\n\n")
	fmt.Fprintf(&b, "💰 Total Balance: %s\n", format.Signed(s.TotalBalance, code))
	fmt.Fprintf(&b, "📈 Total Income: %s\n", q.money(s.TotalIncome))
	fmt.Fprintf(&b, "📉 Total Expenses: %s\n", q.money(s.TotalExpenses))
	fmt.Fprintf(&b, "💵 Net Amount: %s\n", format.Signed(s.NetAmount, code))
	if s.TotalIncome > 0 {
		fmt.Fprintf(&b, "📊 Savings Rate: %s%%\n", format.Percent(s.NetAmount/s.TotalIncome*100))
	}
	fmt.Fprintf(&b, "🏦 Accounts: %d\n", s.AccountCount)
	fmt.Fprintf(&b, "📝 Transactions: %d", s.TransactionCount)
	return b.String()
}

const helpText = "I can help you with:\n\n" +
	"💰 Check your account balances\n" +
	"📈 View your income and expenses\n" +
	"📊 See spending by category\n" +
	"📋 Get your financial summary\n" +
	"🕐 View recent transactions\n" +
	"🤝 Check lend/borrow records\n" +
	"📅 Monthly/weekly/yearly spending analysis\n" +
	"💵 Budget tracking and status\n" +
	"🎯 Savings goals progress\n" +
	"📈 Investment portfolio\n" +
	"📊 Trends and comparisons\n" +
	"🔮 Predictive forecasts\n" +
	"🚨 Anomaly detection\n" +
	"⚡ Spending velocity\n" +
	"🔥 Burn rate analysis\n" +
	"🌍 Multi-currency analysis\n" +
	"💡 Smart recommendations\n\n" +
	"💡 Try asking:\n" +
	"• \"What's my balance?\"\n" +
	"• \"Spending forecast\"\n" +
	"• \"Burn rate\"\n" +
	"• \"Any unusual spending?\"\n" +
	"• \"Give me recommendations\"\n" +
	"• \"Multi-currency breakdown\""

func help(Query) string {
	return helpText
}

func fallback(q Query) string {
	return fmt.Sprintf("I understand you're asking about \"%s\". I can help you with:\n\n"+
		"• Account balances\n"+
		"• Income and expenses\n"+
		"• Spending by category\n"+
		"• Financial summaries\n"+
		"• Recent transactions\n\n"+
		"Try asking: \"What's my balance?\" or \"How much did I spend this month?\"", q.Message)
}
