package balanze

// Account is a row of the accounts table
type Account struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id,omitempty"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Balance  Number `json:"balance"`
	Currency string `json:"currency"`
}

// Transaction is a row of the transactions table. Type is "income" or
// "expense"; expense amounts may be stored signed.
type Transaction struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id,omitempty"`
	AccountID   string   `json:"account_id"`
	Type        string   `json:"type"`
	Amount      Number   `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Date        Date     `json:"date"`
	CreatedAt   Date     `json:"created_at"`
	Tags        Tags     `json:"tags"`
}

// Purchase is a row of the purchases table. Price is the legacy amount column.
type Purchase struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	ItemName  string `json:"item_name"`
	Amount    Number `json:"amount"`
	Price     Number `json:"price"`
	Status    string `json:"status"`
	CreatedAt Date   `json:"created_at"`
}

// LendBorrowRecord is a row of the lend_borrow table. Type is "lent" or "borrowed".
type LendBorrowRecord struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id,omitempty"`
	PersonName string `json:"person_name"`
	Amount     Number `json:"amount"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	DueDate    Date   `json:"due_date"`
}

// SavingsGoal is a row of the savings_goals table
type SavingsGoal struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id,omitempty"`
	Name          string `json:"name"`
	TargetAmount  Number `json:"target_amount"`
	CurrentAmount Number `json:"current_amount"`
	TargetDate    Date   `json:"target_date"`
}

// Category is a row of the categories table. A category counts as budgeted
// only when MonthlyBudget is positive.
type Category struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id,omitempty"`
	Name          string `json:"name"`
	MonthlyBudget Number `json:"monthly_budget"`
}

// InvestmentAsset is a row of the investment_assets table
type InvestmentAsset struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id,omitempty"`
	Name         string `json:"name"`
	CurrentValue Number `json:"current_value"`
	TotalValue   Number `json:"total_value"`
	CostBasis    Number `json:"cost_basis"`
}

// Table names in the hosted store
const (
	TableAccounts         = "accounts"
	TableTransactions     = "transactions"
	TablePurchases        = "purchases"
	TableLendBorrow       = "lend_borrow"
	TableSavingsGoals     = "savings_goals"
	TableCategories       = "categories"
	TableInvestmentAssets = "investment_assets"
)

// Tables lists every collection the assistant reads, in fetch order. The
// aggregator starts one loader per entry.
var Tables = []string{
	TableAccounts,
	TableTransactions,
	TablePurchases,
	TableLendBorrow,
	TableSavingsGoals,
	TableCategories,
	TableInvestmentAssets,
}
