package balanze

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/shalconnects/balanze-go/internal/queries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransport is a mock implementation of the Transport interface
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Select(ctx context.Context, table string, params url.Values, result interface{}) error {
	args := m.Called(ctx, table, params, result)

	// If mock provides result data, unmarshal it
	if args.Get(0) != nil {
		resultJSON := args.Get(0).(string)
		if err := json.Unmarshal([]byte(resultJSON), result); err != nil {
			return err
		}
	}

	return args.Error(1)
}

func (m *MockTransport) SetAuth(apiKey string) {
	m.Called(apiKey)
}

type denyLimiter struct{}

func (denyLimiter) Wait(ctx context.Context) error {
	return context.Canceled
}

func newTestClient(transport Transport) *Client {
	return &Client{
		transport:   transport,
		options:     &ClientOptions{},
		baseURL:     "https://project.test",
		projections: queries.NewLoader(),
	}
}

func hasParams(table, order string) interface{} {
	return mock.MatchedBy(func(params url.Values) bool {
		return params.Get("select") == queries.MustLoad(table) &&
			params.Get("user_id") == "eq.user-1" &&
			params.Get("order") == order
	})
}

func TestClient_ListAccounts(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `[
		{"id": "acc-1", "name": "Checking", "type": "bank", "balance": "1500.50", "currency": "USD"},
		{"id": "acc-2", "name": "Wallet", "type": "cash", "balance": 40, "currency": null}
	]`

	mockTransport.On("Select", mock.Anything, "accounts", hasParams("accounts", ""), mock.Anything).
		Return(mockResponse, nil)

	accounts, err := client.ListAccounts(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Checking", accounts[0].Name)
	assert.Equal(t, 1500.50, accounts[0].Balance.Float64())
	assert.Equal(t, "", accounts[1].Currency)
	mockTransport.AssertExpectations(t)
}

func TestClient_ListTransactions_NewestFirst(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `[
		{
			"id": "tx-1",
			"account_id": "acc-1",
			"type": "expense",
			"amount": -42.5,
			"category": "Groceries",
			"description": "Market",
			"date": "2024-01-10",
			"created_at": "2024-01-10T09:30:00+00:00",
			"tags": ["weekly"]
		}
	]`

	mockTransport.On("Select", mock.Anything, "transactions", hasParams("transactions", "created_at.desc"), mock.Anything).
		Return(mockResponse, nil)

	txs, err := client.ListTransactions(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, -42.5, txs[0].Amount.Float64())
	assert.True(t, txs[0].Date.DateOnly)
	assert.Equal(t, Tags{"weekly"}, txs[0].Tags)
	mockTransport.AssertExpectations(t)
}

func TestClient_ListOtherCollections(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)
	ctx := context.Background()

	mockTransport.On("Select", mock.Anything, "purchases", hasParams("purchases", "created_at.desc"), mock.Anything).
		Return(`[{"id":"p-1","item_name":"Desk","price":"120","status":"planned"}]`, nil)
	mockTransport.On("Select", mock.Anything, "lend_borrow", hasParams("lend_borrow", ""), mock.Anything).
		Return(`[{"id":"l-1","person_name":"Sam","amount":30,"type":"borrowed","status":"active","due_date":"2024-02-01"}]`, nil)
	mockTransport.On("Select", mock.Anything, "savings_goals", hasParams("savings_goals", ""), mock.Anything).
		Return(`[{"id":"g-1","name":"Trip","target_amount":1000,"current_amount":250,"target_date":null}]`, nil)
	mockTransport.On("Select", mock.Anything, "categories", hasParams("categories", ""), mock.Anything).
		Return(`[{"id":"c-1","name":"Food","monthly_budget":"300"}]`, nil)
	mockTransport.On("Select", mock.Anything, "investment_assets", hasParams("investment_assets", ""), mock.Anything).
		Return(`[{"id":"i-1","name":"Index","current_value":0,"total_value":900,"cost_basis":800}]`, nil)

	purchases, err := client.ListPurchases(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 120.0, purchases[0].Price.Float64())

	records, err := client.ListLendBorrow(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "borrowed", records[0].Type)

	goals, err := client.ListSavingsGoals(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, goals[0].TargetDate.IsZero())

	categories, err := client.ListCategories(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 300.0, categories[0].MonthlyBudget.Float64())

	assets, err := client.ListInvestmentAssets(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 900.0, assets[0].TotalValue.Float64())

	mockTransport.AssertExpectations(t)
}

func TestClient_ListWrapsTransportErrors(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Select", mock.Anything, "categories", mock.Anything, mock.Anything).
		Return(nil, ErrNotAuthenticated)

	categories, err := client.ListCategories(context.Background(), "user-1")

	assert.Nil(t, categories)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get categories")
	assert.True(t, IsAuthError(err))
}

func TestClient_RateLimiterError(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)
	client.options.RateLimiter = denyLimiter{}

	_, err := client.ListAccounts(context.Background(), "user-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	mockTransport.AssertNotCalled(t, "Select", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(nil)
	assert.ErrorIs(t, err, ErrMissingBaseURL)

	client, err := NewClient(&ClientOptions{BaseURL: "https://project.test", APIKey: "anon"})
	require.NoError(t, err)
	assert.Equal(t, "https://project.test", client.baseURL)
	assert.NotNil(t, client.options.HTTPClient)

	// Store is satisfied by the client
	var _ Store = client
}

func TestClient_SetAPIKey(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("SetAuth", "service-key").Return()
	client.SetAPIKey("service-key")

	mockTransport.AssertExpectations(t)
}
