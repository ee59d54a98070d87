package assistant

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shalconnects/balanze-go/internal/intent"
	"github.com/shalconnects/balanze-go/pkg/balanze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore serves fixed rows for every user
type fakeStore struct {
	accounts     []*balanze.Account
	transactions []*balanze.Transaction
}

func (f *fakeStore) ListAccounts(context.Context, string) ([]*balanze.Account, error) {
	return f.accounts, nil
}

func (f *fakeStore) ListTransactions(context.Context, string) ([]*balanze.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeStore) ListPurchases(context.Context, string) ([]*balanze.Purchase, error) {
	return nil, nil
}

func (f *fakeStore) ListLendBorrow(context.Context, string) ([]*balanze.LendBorrowRecord, error) {
	return nil, nil
}

func (f *fakeStore) ListSavingsGoals(context.Context, string) ([]*balanze.SavingsGoal, error) {
	return nil, nil
}

func (f *fakeStore) ListCategories(context.Context, string) ([]*balanze.Category, error) {
	return nil, nil
}

func (f *fakeStore) ListInvestmentAssets(context.Context, string) ([]*balanze.InvestmentAsset, error) {
	return nil, balanze.ErrNotFound
}

func fixedClock() time.Time {
	return time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
}

func TestAssistant_Respond(t *testing.T) {
	store := &fakeStore{
		accounts: []*balanze.Account{{ID: "acc-1", Name: "Cash", Balance: 100, Currency: "USD"}},
		transactions: []*balanze.Transaction{
			{AccountID: "acc-1", Type: "expense", Amount: 30, Category: "Food", Date: balanze.NewDate(2023, time.December, 20)},
		},
	}
	a := New(store, &Options{Clock: fixedClock})

	response := a.Respond(context.Background(), "user-1", "what's my balance?")
	assert.Contains(t, response, "Total Balance: $100.00")

	reply := a.Ask(context.Background(), "user-1", "how much did I spend last month")
	assert.Equal(t, intent.Expenses, reply.Intent)
	assert.Equal(t, "In last month, you spent $30.00. You had 1 expense transaction.", reply.Response)
	assert.Equal(t, fixedClock(), reply.Context.Now)
}

func TestAssistant_UnknownMessage(t *testing.T) {
	a := New(&fakeStore{}, &Options{Clock: fixedClock})

	reply := a.Ask(context.Background(), "user-1", "asdupqwe")

	assert.Equal(t, intent.Fallback, reply.Intent)
	assert.Contains(t, reply.Response, `"asdupqwe"`)
}

func TestAssistant_HandlerPanic(t *testing.T) {
	classifier := intent.NewClassifierWithRules([]intent.Rule{{
		Intent:  intent.Balance,
		Pattern: regexp.MustCompile(`balance`),
		Handle: func(intent.Query, []string) (string, bool) {
			panic("nil map")
		},
	}})
	a := New(&fakeStore{}, &Options{Clock: fixedClock, Classifier: classifier})

	assert.Equal(t, GenerationFailed, a.Respond(context.Background(), "user-1", "balance"))
}

func TestAssistant_BlankResponse(t *testing.T) {
	classifier := intent.NewClassifierWithRules([]intent.Rule{{
		Intent:  intent.Help,
		Pattern: regexp.MustCompile(`help`),
		Handle: func(intent.Query, []string) (string, bool) {
			return "  ", true
		},
	}})
	a := New(&fakeStore{}, &Options{Clock: fixedClock, Classifier: classifier})

	assert.Equal(t, EmptyResponse, a.Respond(context.Background(), "user-1", "help"))
}

func TestAssistant_Summary(t *testing.T) {
	store := &fakeStore{accounts: []*balanze.Account{{ID: "acc-1", Balance: 250, Currency: "BDT"}}}
	a := New(store, &Options{Clock: fixedClock, Location: time.FixedZone("BDT", 6*60*60)})

	ctx := a.Summary(context.Background(), "user-1")

	require.NotNil(t, ctx)
	assert.Equal(t, 250.0, ctx.Summary.TotalBalance)
	assert.Equal(t, "BDT", ctx.Summary.PrimaryCurrency)
	assert.Equal(t, "BDT", ctx.Now.Location().String())
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short"))
	assert.Equal(t, strings.Repeat("৳", 50), preview(strings.Repeat("৳", 80)))
}
