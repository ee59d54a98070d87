package main

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shalconnects/balanze-go/internal/app"
	"github.com/shalconnects/balanze-go/internal/config"
	"github.com/shalconnects/balanze-go/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig("balanze.toml", os.Getenv("BALANZE_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// stdout carries the protocol, so logs must go to stderr as JSON
	logger := logging.New(cfg.Logging.Level, "json")

	a, err := app.New(cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize balanze: %v", err)
	}
	defer a.Close()

	impl := &mcp.Implementation{
		Name:    "balanze",
		Version: "1.0.0",
	}

	server := mcp.NewServer(impl, nil)

	registerTools(server, a.Assistant)

	// Run server over stdio transport
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Printf("server error: %v", err)
	}
}

func registerTools(server *mcp.Server, assistant Assistant) {
	tools := &balanzeTools{assistant: assistant}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_assistant",
		Description: "Ask a free-text question about a user's finances, such as balances, spending by category or period, budgets, savings goals, investments, burn rate, or money lent and borrowed. Returns the assistant's answer as text.",
	}, tools.AskAssistant)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_financial_summary",
		Description: "Get the headline figures for a user: total balance, income, expenses, net amount, this and last month's spending, burn rate runway, and investment performance.",
	}, tools.GetFinancialSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_budget_status",
		Description: "Get every budgeted category with its monthly budget, amount spent, remaining amount, percentage used and state (under, near_limit, over).",
	}, tools.GetBudgetStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_spending_trends",
		Description: "Get spending for the last six calendar months (most recent first) together with categories whose spending this month is unusually high.",
	}, tools.GetSpendingTrends)
}
