package intent

import "regexp"

// DefaultRules returns the rule table in priority order. Patterns overlap,
// so narrower rules sit ahead of the broad ones they would otherwise lose to.
func DefaultRules() []Rule {
	return []Rule{
		{Balance, regexp.MustCompile(`\b(balance|total balance|how much money|current balance|account balance)\b`), always(balance)},
		{Income, regexp.MustCompile(`\b(income|earned|earning|salary|how much.*income|total income)\b`), always(income)},
		{TopCategories, regexp.MustCompile(`\b(top|highest|most|biggest).*?(spend|expense|category|categories)\b`), always(topCategories)},
		{CategoryBreakdown, regexp.MustCompile(`\b(spending|spend|expense).*?(by|per|category|categories|breakdown)\b`), always(categoryBreakdown)},
		{CategorySpend, regexp.MustCompile(`\b(spent|spending|spend).*?(on|for)?\s+([a-z\s]+?)(\?|$|this|last|month)`), categorySpend},
		{Expenses, regexp.MustCompile(`\b(expense|spent|spending|how much.*spend|total expense|cost)\b`), always(expenses)},
		{Net, regexp.MustCompile(`\b(net|savings|saved|left over|remaining|difference)\b`), always(net)},
		{PeriodSpending, regexp.MustCompile(`\b(this month|current month|monthly|per month|last month|previous month|this week|last week|this year|last year)\b`), always(periodSpending)},
		{Accounts, regexp.MustCompile(`\b(account|accounts|how many.*account)\b`), always(accounts)},
		{TransactionCount, regexp.MustCompile(`\b(transaction|transactions|how many.*transaction)\b`), always(transactionCount)},
		{Recent, regexp.MustCompile(`\b(recent|latest|last|recently)\b`), always(recent)},
		{Budget, regexp.MustCompile(`\b(budget|over budget|under budget|budget left|budget remaining)\b`), always(budget)},
		{Goals, regexp.MustCompile(`\b(savings goal|savings goals|goal progress|how.*goal|target)\b`), always(goals)},
		{Investments, regexp.MustCompile(`\b(investment|portfolio|investments|portfolio value|return|gain|loss)\b`), always(investments)},
		{Trends, regexp.MustCompile(`\b(compare|comparison|trend|increase|decrease|more|less|vs|versus)\b`), always(trends)},
		{Forecast, regexp.MustCompile(`\b(forecast|prediction|projected|projection|will spend|spending forecast|end of month)\b`), always(forecast)},
		{BurnRate, regexp.MustCompile(`\b(burn rate|runway|how long|months left|until zero|until broke)\b`), always(burnRate)},
		{Anomalies, regexp.MustCompile(`\b(anomaly|unusual|spike|unexpected|abnormal|outlier)\b`), always(anomalies)},
		{Velocity, regexp.MustCompile(`\b(velocity|spending rate|daily spending|spending pace|spend per day)\b`), always(velocity)},
		{Currencies, regexp.MustCompile(`\b(multi.*currency|currency breakdown|by currency|all currencies|currency analysis)\b`), always(currencies)},
		{Recommendations, regexp.MustCompile(`\b(recommend|suggestion|advice|tip|should|what should|how to improve)\b`), always(recommendations)},
		{LendBorrow, regexp.MustCompile(`\b(lent|borrow|loan|owe|owed|lend|who owes|who.*owe)\b`), always(lendBorrow)},
		{Purchases, regexp.MustCompile(`\b(purchase|purchases|bought|buying)\b`), always(purchases)},
		{Summary, regexp.MustCompile(`\b(summary|overview|financial health|how.*doing|status)\b`), always(summary)},
		{Help, regexp.MustCompile(`\b(help|what can|what do|how can|assist|support)\b`), always(help)},
	}
}
