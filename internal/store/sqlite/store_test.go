package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shalconnects/balanze-go/internal/aggregator"
	"github.com/shalconnects/balanze-go/pkg/balanze"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SeedAndList(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	ts := func(day int) balanze.Date {
		return balanze.Date{Time: time.Date(2024, time.March, day, 10, 0, 0, 0, time.UTC)}
	}

	require.NoError(t, s.Seed(ctx, "user-1", Records{
		Accounts: []*balanze.Account{
			{ID: "acc-1", Name: "Cash", Type: "cash", Balance: 120.5, Currency: "BDT"},
			{ID: "acc-2", Name: "Bank", Balance: 10},
		},
		Transactions: []*balanze.Transaction{
			{ID: "tx-old", AccountID: "acc-1", Type: "expense", Amount: 5, Category: "Food", CreatedAt: ts(1)},
			{ID: "tx-new", AccountID: "acc-1", Type: "income", Amount: 50, Date: balanze.NewDate(2024, time.March, 3), CreatedAt: ts(3), Tags: []string{"salary"}},
		},
		Purchases: []*balanze.Purchase{
			{ItemName: "Desk", Price: 80, CreatedAt: ts(2)},
		},
		LendBorrow: []*balanze.LendBorrowRecord{
			{PersonName: "Rafi", Amount: 20, Type: "lent", Status: "active", DueDate: balanze.NewDate(2024, time.April, 1)},
		},
		SavingsGoals: []*balanze.SavingsGoal{
			{Name: "Trip", TargetAmount: 1000, CurrentAmount: 250},
		},
		Categories: []*balanze.Category{
			{Name: "Food", MonthlyBudget: 300},
		},
		InvestmentAssets: []*balanze.InvestmentAsset{
			{Name: "Index fund", TotalValue: 1100, CostBasis: 1000},
		},
	}))
	require.NoError(t, s.Seed(ctx, "user-2", Records{
		Accounts: []*balanze.Account{{ID: "acc-3", Name: "Other", Balance: 999}},
	}))

	accounts, err := s.ListAccounts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Cash", accounts[0].Name)
	assert.Equal(t, balanze.Number(120.5), accounts[0].Balance)
	assert.Equal(t, "", accounts[1].Currency)

	txs, err := s.ListTransactions(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "tx-new", txs[0].ID)
	assert.Equal(t, balanze.Tags{"salary"}, txs[0].Tags)
	assert.True(t, txs[0].Date.DateOnly)
	assert.Equal(t, "2024-03-03", txs[0].Date.String())
	assert.True(t, txs[1].Date.IsZero())
	assert.Nil(t, txs[1].Tags)

	purchases, err := s.ListPurchases(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.NotEmpty(t, purchases[0].ID)
	assert.Equal(t, balanze.Number(80), purchases[0].Price)

	lend, err := s.ListLendBorrow(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, lend, 1)
	assert.Equal(t, "2024-04-01", lend[0].DueDate.String())

	goals, err := s.ListSavingsGoals(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.True(t, goals[0].TargetDate.IsZero())

	categories, err := s.ListCategories(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, balanze.Number(300), categories[0].MonthlyBudget)

	assets, err := s.ListInvestmentAssets(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, balanze.Number(1100), assets[0].TotalValue)

	other, err := s.ListAccounts(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "Other", other[0].Name)
}

func TestStore_UnknownUser(t *testing.T) {
	s := openMemory(t)

	accounts, err := s.ListAccounts(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestStore_SeedReplacesByID(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	require.NoError(t, s.Seed(ctx, "user-1", Records{Accounts: []*balanze.Account{{ID: "acc-1", Balance: 1}}}))
	require.NoError(t, s.Seed(ctx, "user-1", Records{Accounts: []*balanze.Account{{ID: "acc-1", Balance: 2}}}))

	accounts, err := s.ListAccounts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, balanze.Number(2), accounts[0].Balance)
}

func TestStore_MalformedTags(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	rows := []struct{ id, tags string }{
		{"tx-text", "dps_transfer"},
		{"tx-string", `"dps_transfer"`},
		{"tx-number", "7"},
		{"tx-ok", `["salary"]`},
	}
	for i, r := range rows {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO transactions (id, user_id, type, amount, created_at, tags) VALUES (?, ?, 'income', 10, ?, ?)`,
			r.id, "user-1", time.Date(2024, time.March, i+1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339), r.tags)
		require.NoError(t, err)
	}

	txs, err := s.ListTransactions(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, txs, 4)
	assert.Equal(t, "tx-ok", txs[0].ID)
	assert.Equal(t, balanze.Tags{"salary"}, txs[0].Tags)
	for _, tx := range txs[1:] {
		assert.Empty(t, tx.Tags, tx.ID)
	}
}

func TestStore_ClosedDatabase(t *testing.T) {
	s, err := Open(MemoryPath)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.ListCategories(context.Background(), "user-1")
	assert.Error(t, err)
}

func TestStore_FeedsAggregator(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	require.NoError(t, s.Seed(ctx, "user-1", Records{
		Accounts: []*balanze.Account{{ID: "acc-1", Name: "Cash", Balance: 1000}},
		Transactions: []*balanze.Transaction{
			{AccountID: "acc-1", Type: "expense", Amount: 40, Category: "Food", Date: balanze.NewDate(2024, time.March, 2)},
			{AccountID: "acc-1", Type: "expense", Amount: 500, Category: "Savings", Date: balanze.NewDate(2024, time.March, 2), Tags: []string{"dps_transfer"}},
		},
	}))

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	ctxData := aggregator.New(s, nil).Aggregate(ctx, "user-1", now)

	assert.Equal(t, 1000.0, ctxData.Summary.TotalBalance)
	assert.Equal(t, 40.0, ctxData.Summary.TotalExpenses)
	assert.Equal(t, 40.0, ctxData.Summary.ThisMonthExpenses)
}
