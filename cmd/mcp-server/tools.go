package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shalconnects/balanze-go/internal/analytics"
	"github.com/shalconnects/balanze-go/internal/assistant"
)

// Assistant is the part of assistant.Assistant the tools need
type Assistant interface {
	Ask(ctx context.Context, userID, message string) assistant.Reply
	Summary(ctx context.Context, userID string) *analytics.Context
}

// balanzeTools implements all tool handlers
type balanzeTools struct {
	assistant Assistant
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("userId is required")
	}
	return nil
}

// AskAssistant tool - answers a free-text question
type AskAssistantInput struct {
	UserID  string `json:"userId" jsonschema:"ID of the user whose records are queried"`
	Message string `json:"message" jsonschema:"The question, e.g. How much did I spend on groceries last month?"`
}

type AskAssistantOutput struct {
	Response string `json:"response" jsonschema:"The assistant's answer"`
	Intent   string `json:"intent" jsonschema:"Name of the rule that produced the answer"`
}

func (t *balanzeTools) AskAssistant(ctx context.Context, req *mcp.CallToolRequest, input AskAssistantInput) (*mcp.CallToolResult, AskAssistantOutput, error) {
	if err := requireUser(input.UserID); err != nil {
		return nil, AskAssistantOutput{}, err
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, AskAssistantOutput{}, fmt.Errorf("message is required")
	}

	reply := t.assistant.Ask(ctx, input.UserID, input.Message)

	return nil, AskAssistantOutput{
		Response: reply.Response,
		Intent:   string(reply.Intent),
	}, nil
}

// GetFinancialSummary tool - headline numbers
type UserInput struct {
	UserID string `json:"userId" jsonschema:"ID of the user whose records are queried"`
}

type GetFinancialSummaryOutput struct {
	Currency          string  `json:"currency" jsonschema:"Primary currency (first account's currency)"`
	TotalBalance      float64 `json:"totalBalance" jsonschema:"Sum of all account balances"`
	TotalIncome       float64 `json:"totalIncome" jsonschema:"All recorded income"`
	TotalExpenses     float64 `json:"totalExpenses" jsonschema:"All recorded expenses"`
	NetAmount         float64 `json:"netAmount" jsonschema:"Income minus expenses"`
	ThisMonthExpenses float64 `json:"thisMonthExpenses" jsonschema:"Expenses in the current calendar month"`
	LastMonthExpenses float64 `json:"lastMonthExpenses" jsonschema:"Expenses in the previous calendar month"`
	NetMonthlyRate    float64 `json:"netMonthlyRate" jsonschema:"This month's income minus this month's expenses"`
	MonthsUntilZero   *int    `json:"monthsUntilZero,omitempty" jsonschema:"Months until the balance runs out at the current rate, if it is falling"`
	PortfolioValue    float64 `json:"portfolioValue" jsonschema:"Current value of all investment assets"`
	ReturnPercentage  float64 `json:"returnPercentage" jsonschema:"Portfolio gain or loss relative to cost basis"`
	AccountCount      int     `json:"accountCount" jsonschema:"Number of accounts"`
	TransactionCount  int     `json:"transactionCount" jsonschema:"Number of transactions excluding transfers"`
}

func (t *balanzeTools) GetFinancialSummary(ctx context.Context, req *mcp.CallToolRequest, input UserInput) (*mcp.CallToolResult, GetFinancialSummaryOutput, error) {
	if err := requireUser(input.UserID); err != nil {
		return nil, GetFinancialSummaryOutput{}, err
	}

	c := t.assistant.Summary(ctx, input.UserID)

	return nil, GetFinancialSummaryOutput{
		Currency:          c.Summary.PrimaryCurrency,
		TotalBalance:      c.Summary.TotalBalance,
		TotalIncome:       c.Summary.TotalIncome,
		TotalExpenses:     c.Summary.TotalExpenses,
		NetAmount:         c.Summary.NetAmount,
		ThisMonthExpenses: c.Summary.ThisMonthExpenses,
		LastMonthExpenses: c.Summary.LastMonthExpenses,
		NetMonthlyRate:    c.Analytics.NetMonthlyRate,
		MonthsUntilZero:   c.Analytics.MonthsUntilZero,
		PortfolioValue:    c.Investments.TotalPortfolioValue,
		ReturnPercentage:  c.Investments.ReturnPercentage,
		AccountCount:      c.Summary.AccountCount,
		TransactionCount:  c.Summary.TransactionCount,
	}, nil
}

// GetBudgetStatus tool - budgeted categories
type BudgetEntry struct {
	Category   string  `json:"category" jsonschema:"Budget category name"`
	Budget     float64 `json:"budget" jsonschema:"Monthly budget"`
	Spent      float64 `json:"spent" jsonschema:"Amount spent in the category"`
	Remaining  float64 `json:"remaining" jsonschema:"Budget minus spent, negative when over"`
	Percentage float64 `json:"percentage" jsonschema:"Percentage of budget spent"`
	State      string  `json:"state" jsonschema:"under, near_limit or over"`
}

type GetBudgetStatusOutput struct {
	Budgets []BudgetEntry `json:"budgets" jsonschema:"One entry per budgeted category"`
	Count   int           `json:"count" jsonschema:"Number of budgeted categories"`
}

func (t *balanzeTools) GetBudgetStatus(ctx context.Context, req *mcp.CallToolRequest, input UserInput) (*mcp.CallToolResult, GetBudgetStatusOutput, error) {
	if err := requireUser(input.UserID); err != nil {
		return nil, GetBudgetStatusOutput{}, err
	}

	c := t.assistant.Summary(ctx, input.UserID)

	entries := make([]BudgetEntry, 0, len(c.Budgets))
	for _, b := range c.Budgets {
		entries = append(entries, BudgetEntry{
			Category:   b.Category,
			Budget:     b.Budget,
			Spent:      b.Spent,
			Remaining:  b.Remaining(),
			Percentage: b.Percentage(),
			State:      b.State().String(),
		})
	}

	return nil, GetBudgetStatusOutput{
		Budgets: entries,
		Count:   len(entries),
	}, nil
}

// GetSpendingTrends tool - six month history and anomalies
type MonthEntry struct {
	Month  string  `json:"month" jsonschema:"Month name, e.g. January"`
	Year   int     `json:"year" jsonschema:"Calendar year of the month"`
	Amount float64 `json:"amount" jsonschema:"Expenses in the month"`
}

type AnomalyEntry struct {
	Category  string  `json:"category" jsonschema:"Spending category"`
	ThisMonth float64 `json:"thisMonth" jsonschema:"Spent in the category this month"`
	Average   float64 `json:"average" jsonschema:"Three-month average for the category"`
	Increase  float64 `json:"increase" jsonschema:"Percentage above the average"`
}

type GetSpendingTrendsOutput struct {
	Months         []MonthEntry   `json:"months" jsonschema:"Most recent month first"`
	AverageMonthly float64        `json:"averageMonthly" jsonschema:"Average of the six months"`
	Anomalies      []AnomalyEntry `json:"anomalies" jsonschema:"Categories more than 50% above their average"`
}

func (t *balanzeTools) GetSpendingTrends(ctx context.Context, req *mcp.CallToolRequest, input UserInput) (*mcp.CallToolResult, GetSpendingTrendsOutput, error) {
	if err := requireUser(input.UserID); err != nil {
		return nil, GetSpendingTrendsOutput{}, err
	}

	m := t.assistant.Summary(ctx, input.UserID).Analytics

	months := make([]MonthEntry, 0, len(m.MonthlySpending))
	for _, s := range m.MonthlySpending {
		months = append(months, MonthEntry{Month: s.Month, Year: s.Year, Amount: s.Amount})
	}

	anomalies := make([]AnomalyEntry, 0, len(m.CategoryAnomalies))
	for _, a := range m.CategoryAnomalies {
		anomalies = append(anomalies, AnomalyEntry{
			Category:  a.Category,
			ThisMonth: a.ThisMonth,
			Average:   a.AvgMonth,
			Increase:  a.Increase,
		})
	}

	return nil, GetSpendingTrendsOutput{
		Months:         months,
		AverageMonthly: m.AvgMonthlySpending,
		Anomalies:      anomalies,
	}, nil
}
