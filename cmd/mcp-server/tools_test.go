package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shalconnects/balanze-go/internal/analytics"
	"github.com/shalconnects/balanze-go/internal/assistant"
	"github.com/shalconnects/balanze-go/internal/intent"
)

// MockAssistant is a mock implementation of Assistant
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Ask(ctx context.Context, userID, message string) assistant.Reply {
	args := m.Called(ctx, userID, message)
	return args.Get(0).(assistant.Reply)
}

func (m *MockAssistant) Summary(ctx context.Context, userID string) *analytics.Context {
	args := m.Called(ctx, userID)
	return args.Get(0).(*analytics.Context)
}

func fixture() *analytics.Context {
	c := analytics.Empty(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	c.Summary.TotalBalance = 1000
	c.Summary.PrimaryCurrency = "BDT"
	c.Summary.ThisMonthExpenses = 500
	two := 2
	c.Analytics.NetMonthlyRate = -500
	c.Analytics.MonthsUntilZero = &two
	c.Budgets = []analytics.BudgetStatus{
		{Category: "Food", Budget: 100, Spent: 120},
		{Category: "Rent", Budget: 1000, Spent: 850},
	}
	c.Analytics.MonthlySpending = []analytics.MonthSpending{
		{Month: "March", Year: 2024, MonthNum: time.March, Amount: 500},
		{Month: "February", Year: 2024, MonthNum: time.February, Amount: 200},
	}
	c.Analytics.CategoryAnomalies = []analytics.Anomaly{
		{Category: "Food", ThisMonth: 300, AvgMonth: 150, Increase: 100},
	}
	return c
}

func TestAskAssistantTool(t *testing.T) {
	m := new(MockAssistant)
	m.On("Ask", mock.Anything, "user-1", "burn rate").
		Return(assistant.Reply{Intent: intent.BurnRate, Response: "approximately 2 months"})

	tools := &balanzeTools{assistant: m}

	callResult, output, err := tools.AskAssistant(context.Background(), nil, AskAssistantInput{UserID: "user-1", Message: "burn rate"})

	require.NoError(t, err)
	assert.Nil(t, callResult)
	assert.Equal(t, "approximately 2 months", output.Response)
	assert.Equal(t, string(intent.BurnRate), output.Intent)
	m.AssertExpectations(t)
}

func TestAskAssistantTool_Validation(t *testing.T) {
	tools := &balanzeTools{assistant: new(MockAssistant)}

	_, _, err := tools.AskAssistant(context.Background(), nil, AskAssistantInput{Message: "balance"})
	assert.Error(t, err)

	_, _, err = tools.AskAssistant(context.Background(), nil, AskAssistantInput{UserID: "user-1", Message: "  "})
	assert.Error(t, err)
}

func TestGetFinancialSummaryTool(t *testing.T) {
	m := new(MockAssistant)
	m.On("Summary", mock.Anything, "user-1").Return(fixture())

	tools := &balanzeTools{assistant: m}

	_, output, err := tools.GetFinancialSummary(context.Background(), nil, UserInput{UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, "BDT", output.Currency)
	assert.Equal(t, 1000.0, output.TotalBalance)
	assert.Equal(t, -500.0, output.NetMonthlyRate)
	require.NotNil(t, output.MonthsUntilZero)
	assert.Equal(t, 2, *output.MonthsUntilZero)
}

func TestGetFinancialSummaryTool_MissingUser(t *testing.T) {
	m := new(MockAssistant)
	tools := &balanzeTools{assistant: m}

	_, _, err := tools.GetFinancialSummary(context.Background(), nil, UserInput{})

	assert.Error(t, err)
	m.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything)
}

func TestGetBudgetStatusTool(t *testing.T) {
	m := new(MockAssistant)
	m.On("Summary", mock.Anything, "user-1").Return(fixture())

	tools := &balanzeTools{assistant: m}

	_, output, err := tools.GetBudgetStatus(context.Background(), nil, UserInput{UserID: "user-1"})

	require.NoError(t, err)
	require.Equal(t, 2, output.Count)
	assert.Equal(t, "over", output.Budgets[0].State)
	assert.Equal(t, -20.0, output.Budgets[0].Remaining)
	assert.Equal(t, "near_limit", output.Budgets[1].State)
	assert.InDelta(t, 85.0, output.Budgets[1].Percentage, 1e-9)
}

func TestGetSpendingTrendsTool(t *testing.T) {
	m := new(MockAssistant)
	m.On("Summary", mock.Anything, "user-1").Return(fixture())

	tools := &balanzeTools{assistant: m}

	_, output, err := tools.GetSpendingTrends(context.Background(), nil, UserInput{UserID: "user-1"})

	require.NoError(t, err)
	require.Len(t, output.Months, 2)
	assert.Equal(t, "March", output.Months[0].Month)
	assert.Equal(t, 2024, output.Months[0].Year)
	require.Len(t, output.Anomalies, 1)
	assert.Equal(t, 150.0, output.Anomalies[0].Average)
}
