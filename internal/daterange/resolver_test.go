package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	// Wednesday
	now := time.Date(2024, time.May, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		message string
		start   time.Time
		end     time.Time
		label   string
	}{
		{"last month", "How much did I spend LAST MONTH?", day(2024, time.April, 1), day(2024, time.April, 30), "Last Month"},
		{"previous month", "income previous month", day(2024, time.April, 1), day(2024, time.April, 30), "Last Month"},
		{"this month", "spending this month", day(2024, time.May, 1), day(2024, time.May, 31), "This Month"},
		{"current month", "current month expenses", day(2024, time.May, 1), day(2024, time.May, 31), "This Month"},
		{"last week", "what did I spend last week", day(2024, time.May, 6), day(2024, time.May, 12), "Last Week"},
		{"this week", "this week", day(2024, time.May, 13), day(2024, time.May, 19), "This Week"},
		{"this year", "income this year", day(2024, time.January, 1), day(2024, time.December, 31), "This Year"},
		{"last year", "expenses last year", day(2023, time.January, 1), day(2023, time.December, 31), "Last Year"},
		{"earlier month", "spent in march", day(2024, time.March, 1), day(2024, time.March, 31), "March"},
		{"current month name", "may expenses", day(2024, time.May, 1), day(2024, time.May, 31), "May"},
		{"later month is last year", "income in september", day(2023, time.September, 1), day(2023, time.September, 30), "September"},
		{"calendar order wins", "december or february", day(2024, time.February, 1), day(2024, time.February, 29), "February"},
		{"last month beats month name", "june vs last month", day(2024, time.April, 1), day(2024, time.April, 30), "Last Month"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(tt.message, now)
			require.NotNil(t, r)
			assert.Equal(t, tt.start, r.Start)
			assert.Equal(t, tt.end, r.End)
			assert.Equal(t, tt.label, r.Label)
		})
	}
}

func TestResolve_LastMonthInJanuary(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

	r := Resolve("last month", now)

	require.NotNil(t, r)
	assert.Equal(t, day(2023, time.December, 1), r.Start)
	assert.Equal(t, day(2023, time.December, 31), r.End)
	assert.Equal(t, "Last Month", r.Label)
}

func TestResolve_WeekOnSunday(t *testing.T) {
	sunday := time.Date(2024, time.May, 19, 23, 0, 0, 0, time.UTC)

	r := Resolve("this week", sunday)
	require.NotNil(t, r)
	assert.Equal(t, day(2024, time.May, 13), r.Start)
	assert.Equal(t, day(2024, time.May, 19), r.End)

	r = Resolve("last week", sunday)
	require.NotNil(t, r)
	assert.Equal(t, day(2024, time.May, 6), r.Start)
}

func TestResolve_NoPhrase(t *testing.T) {
	now := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, Resolve("what's my balance?", now))
	assert.Nil(t, Resolve("mayonnaise costs", now), "month names need word boundaries")
}

func TestInferMonthYear(t *testing.T) {
	now := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2024, inferMonthYear("march", time.March, now))
	assert.Equal(t, 2023, inferMonthYear("october", time.October, now))
	assert.Equal(t, 2024, inferMonthYear("october this year", time.October, now))
	assert.Equal(t, 2023, inferMonthYear("march last year", time.March, now))
}

func TestRange_Contains(t *testing.T) {
	r := &Range{Start: day(2024, time.April, 1), End: day(2024, time.April, 30)}

	assert.True(t, r.Contains(day(2024, time.April, 1)))
	assert.True(t, r.Contains(time.Date(2024, time.April, 30, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(day(2024, time.May, 1)))
	assert.False(t, r.Contains(time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Time{}))

	var none *Range
	assert.False(t, none.Contains(day(2024, time.April, 2)))
}
