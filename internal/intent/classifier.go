// Package intent maps a chat message to the first matching rule of an
// ordered table and renders that rule's answer.
package intent

import (
	"regexp"
	"strings"

	"github.com/shalconnects/balanze-go/internal/analytics"
	"github.com/shalconnects/balanze-go/internal/daterange"
	"github.com/shalconnects/balanze-go/internal/format"
)

// Intent names the purpose of a message
type Intent string

const (
	Balance           Intent = "balance"
	Income            Intent = "income"
	TopCategories     Intent = "top_categories"
	CategoryBreakdown Intent = "category_breakdown"
	CategorySpend     Intent = "category_spend"
	Expenses          Intent = "expenses"
	Net               Intent = "net"
	PeriodSpending    Intent = "period_spending"
	Accounts          Intent = "accounts"
	TransactionCount  Intent = "transaction_count"
	Recent            Intent = "recent_transactions"
	Budget            Intent = "budget"
	Goals             Intent = "savings_goals"
	Investments       Intent = "investments"
	Trends            Intent = "trends"
	Forecast          Intent = "forecast"
	BurnRate          Intent = "burn_rate"
	Anomalies         Intent = "anomalies"
	Velocity          Intent = "velocity"
	Currencies        Intent = "currencies"
	Recommendations   Intent = "recommendations"
	LendBorrow        Intent = "lend_borrow"
	Purchases         Intent = "purchases"
	Summary           Intent = "summary"
	Help              Intent = "help"
	Fallback          Intent = "fallback"
)

// Query is one message with everything a handler may read
type Query struct {
	// Message is the text as the user sent it
	Message string

	// Lower is Message trimmed and lower-cased; rules match against it
	Lower string

	Context *analytics.Context

	// Range is the window named in the message, or nil
	Range *daterange.Range
}

// NewQuery prepares a message for classification
func NewQuery(message string, ctx *analytics.Context, window *daterange.Range) Query {
	return Query{
		Message: message,
		Lower:   strings.ToLower(strings.TrimSpace(message)),
		Context: ctx,
		Range:   window,
	}
}

// money formats an amount in the user's primary currency
func (q Query) money(amount float64) string {
	return format.Currency(amount, q.Context.Summary.PrimaryCurrency)
}

// Handler renders the answer for a matched rule. match holds the pattern's
// submatches. Returning false passes the message on to the next rule.
type Handler func(q Query, match []string) (string, bool)

// Rule pairs a pattern with its handler
type Rule struct {
	Intent  Intent
	Pattern *regexp.Regexp
	Handle  Handler
}

// Classifier evaluates rules in order; the first rule whose pattern matches
// and whose handler accepts the message wins.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a classifier over the default rule table
func NewClassifier() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// NewClassifierWithRules returns a classifier over a custom rule table
func NewClassifierWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Rules returns the rule table in priority order
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Respond classifies q and returns the intent with its answer. Unmatched
// messages get the Fallback answer.
func (c *Classifier) Respond(q Query) (Intent, string) {
	for _, rule := range c.rules {
		match := rule.Pattern.FindStringSubmatch(q.Lower)
		if match == nil {
			continue
		}
		if response, ok := rule.Handle(q, match); ok {
			return rule.Intent, response
		}
	}
	return Fallback, fallback(q)
}

// always adapts a handler that never declines
func always(h func(q Query) string) Handler {
	return func(q Query, _ []string) (string, bool) {
		return h(q), true
	}
}
