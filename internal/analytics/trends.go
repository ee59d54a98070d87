package analytics

import (
	"math"
	"time"
)

const (
	historyMonths    = 6
	anomalyMonths    = 3
	anomalyThreshold = 1.5
)

func metrics(s Snapshot, summary Summary, now time.Time) Metrics {
	m := Metrics{
		MonthlySpending:   monthlySpending(s.Transactions, now),
		CategoryAnomalies: anomalies(s.Transactions, summary.CategoryBreakdown, now),
		DayOfMonth:        now.Day(),
		DaysInMonth:       daysIn(now.Year(), now.Month(), now.Location()),
	}

	total := 0.0
	for _, month := range m.MonthlySpending {
		total += month.Amount
	}
	m.AvgMonthlySpending = total / float64(len(m.MonthlySpending))

	m.DailyAverage = summary.ThisMonthExpenses / float64(m.DayOfMonth)
	m.ProjectedMonthEnd = m.DailyAverage * float64(m.DaysInMonth)

	thisMonth := monthStart(now, 0)
	for _, t := range s.Transactions {
		if t.IsIncome() && sameMonth(t.Date, thisMonth) {
			m.MonthlyIncome += t.Amount
		}
	}

	m.NetMonthlyRate = m.MonthlyIncome - summary.ThisMonthExpenses
	m.MonthsUntilZero = runway(summary.TotalBalance, m.NetMonthlyRate)

	return m
}

// monthlySpending returns expense totals for the trailing months, most
// recent first
func monthlySpending(txs []Transaction, now time.Time) []MonthSpending {
	months := make([]MonthSpending, 0, historyMonths)
	for i := 0; i < historyMonths; i++ {
		start := monthStart(now, -i)
		months = append(months, MonthSpending{
			Month:    start.Month().String(),
			Amount:   expensesIn(txs, start, nil),
			Year:     start.Year(),
			MonthNum: start.Month(),
		})
	}
	return months
}

// anomalies flags categories whose spend this month exceeds 1.5x their
// average over the current and two previous months
func anomalies(txs []Transaction, breakdown Breakdown, now time.Time) []Anomaly {
	found := []Anomaly{}
	current := monthStart(now, 0)
	for _, entry := range breakdown {
		category := entry.Category

		sum := 0.0
		for i := 0; i < anomalyMonths; i++ {
			sum += expensesIn(txs, monthStart(now, -i), &category)
		}
		avg := sum / anomalyMonths

		thisMonth := expensesIn(txs, current, &category)
		if avg > 0 && thisMonth > avg*anomalyThreshold {
			found = append(found, Anomaly{
				Category:  category,
				ThisMonth: thisMonth,
				AvgMonth:  avg,
				Increase:  (thisMonth - avg) / avg * 100,
			})
		}
	}
	return found
}

// runway returns whole months until balance reaches zero, or nil when the
// balance is not shrinking or already empty
func runway(balance, netMonthlyRate float64) *int {
	if netMonthlyRate >= 0 || balance <= 0 {
		return nil
	}
	months := int(math.Floor(balance / math.Abs(netMonthlyRate)))
	return &months
}
