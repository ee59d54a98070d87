package analytics

import (
	"sort"
	"time"

	"github.com/shalconnects/balanze-go/internal/types"
)

// Context is the derived analytics snapshot for one request
type Context struct {
	Now          time.Time           `json:"now"`
	Accounts     []Account           `json:"accounts"`
	Transactions []Transaction       `json:"transactions"`
	Purchases    []Purchase          `json:"purchases"`
	LendBorrow   []LendBorrow        `json:"lendBorrow"`
	Summary      Summary             `json:"summary"`
	Budgets      []BudgetStatus      `json:"budgets"`
	SavingsGoals []GoalProgress      `json:"savingsGoals"`
	Investments  Investments         `json:"investments"`
	Analytics    Metrics             `json:"analytics"`
	Currencies   []CurrencyBreakdown `json:"currencies"`
}

// Summary holds the headline totals
type Summary struct {
	TotalBalance      float64   `json:"totalBalance"`
	TotalIncome       float64   `json:"totalIncome"`
	TotalExpenses     float64   `json:"totalExpenses"`
	NetAmount         float64   `json:"netAmount"`
	AccountCount      int       `json:"accountCount"`
	TransactionCount  int       `json:"transactionCount"`
	CategoryBreakdown Breakdown `json:"categoryBreakdown"`
	ThisMonthExpenses float64   `json:"thisMonthExpenses"`
	LastMonthExpenses float64   `json:"lastMonthExpenses"`
	PrimaryCurrency   string    `json:"primaryCurrency"`
}

// CategoryAmount is one entry of a Breakdown
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Breakdown is spend per category in first-seen order
type Breakdown []CategoryAmount

// Amount returns the spend recorded for category, or 0
func (b Breakdown) Amount(category string) float64 {
	for _, c := range b {
		if c.Category == category {
			return c.Amount
		}
	}
	return 0
}

// Sorted returns a copy ordered by amount, largest first. Ties keep
// first-seen order.
func (b Breakdown) Sorted() Breakdown {
	sorted := make(Breakdown, len(b))
	copy(sorted, b)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	return sorted
}

// Top returns the n largest categories
func (b Breakdown) Top(n int) Breakdown {
	sorted := b.Sorted()
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Investments summarizes the portfolio
type Investments struct {
	TotalPortfolioValue float64 `json:"totalPortfolioValue"`
	TotalCostBasis      float64 `json:"totalCostBasis"`
	TotalGainLoss       float64 `json:"totalGainLoss"`
	ReturnPercentage    float64 `json:"returnPercentage"`
	AssetCount          int     `json:"assetCount"`
}

// MonthSpending is the expense total for one calendar month
type MonthSpending struct {
	Month    string     `json:"month"`
	Amount   float64    `json:"amount"`
	Year     int        `json:"year"`
	MonthNum time.Month `json:"monthNum"`
}

// Anomaly is a category spending well above its recent average
type Anomaly struct {
	Category  string  `json:"category"`
	ThisMonth float64 `json:"thisMonth"`
	AvgMonth  float64 `json:"avgMonth"`
	Increase  float64 `json:"increase"`
}

// Metrics holds the trend, forecast and runway figures
type Metrics struct {
	MonthlySpending    []MonthSpending `json:"monthlySpending"`
	AvgMonthlySpending float64         `json:"avgMonthlySpending"`
	DailyAverage       float64         `json:"dailyAverage"`
	ProjectedMonthEnd  float64         `json:"projectedMonthEnd"`
	MonthlyIncome      float64         `json:"monthlyIncome"`
	NetMonthlyRate     float64         `json:"netMonthlyRate"`
	MonthsUntilZero    *int            `json:"monthsUntilZero"`
	CategoryAnomalies  []Anomaly       `json:"categoryAnomalies"`
	DayOfMonth         int             `json:"dayOfMonth"`
	DaysInMonth        int             `json:"daysInMonth"`
}

// MonthProgress returns the elapsed share of the current month in percent
func (m Metrics) MonthProgress() float64 {
	if m.DaysInMonth == 0 {
		return 0
	}
	return float64(m.DayOfMonth) / float64(m.DaysInMonth) * 100
}

// DaysLeftInMonth returns the number of days after today in the current month
func (m Metrics) DaysLeftInMonth() int {
	return m.DaysInMonth - m.DayOfMonth
}

// ShareOfAverage returns this month's spend as a percentage of the average
// month, or 0 without history
func (m Metrics) ShareOfAverage(thisMonth float64) float64 {
	if m.AvgMonthlySpending <= 0 {
		return 0
	}
	return thisMonth / m.AvgMonthlySpending * 100
}

// CurrencyBreakdown holds totals for the accounts in one currency
type CurrencyBreakdown struct {
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// Net returns income minus expenses
func (c CurrencyBreakdown) Net() float64 {
	return c.Income - c.Expenses
}

// Empty returns the zero Context used when aggregation fails outright
func Empty(now time.Time) *Context {
	return &Context{
		Now:          now,
		Accounts:     []Account{},
		Transactions: []Transaction{},
		Purchases:    []Purchase{},
		LendBorrow:   []LendBorrow{},
		Summary: Summary{
			CategoryBreakdown: Breakdown{},
			PrimaryCurrency:   types.DefaultCurrency,
		},
		Budgets:      []BudgetStatus{},
		SavingsGoals: []GoalProgress{},
		Analytics: Metrics{
			MonthlySpending:   []MonthSpending{},
			CategoryAnomalies: []Anomaly{},
			DayOfMonth:        now.Day(),
			DaysInMonth:       daysIn(now.Year(), now.Month(), now.Location()),
		},
		Currencies: []CurrencyBreakdown{},
	}
}
