package analytics

// BudgetState classifies a budget against its spend
type BudgetState int

const (
	BudgetUnder BudgetState = iota
	BudgetNearLimit
	BudgetOver
)

func (s BudgetState) String() string {
	switch s {
	case BudgetOver:
		return "over"
	case BudgetNearLimit:
		return "near_limit"
	default:
		return "under"
	}
}

// NearLimitPercent is the usage at which a budget is reported as on track
// to run out
const NearLimitPercent = 80

// BudgetStatus compares a category's monthly budget with its spend
type BudgetStatus struct {
	Category string  `json:"category"`
	Budget   float64 `json:"budget"`
	Spent    float64 `json:"spent"`
}

// Percentage returns spend as a share of the budget
func (b BudgetStatus) Percentage() float64 {
	if b.Budget <= 0 {
		return 0
	}
	return b.Spent / b.Budget * 100
}

// Remaining returns budget minus spend, negative when over
func (b BudgetStatus) Remaining() float64 {
	return b.Budget - b.Spent
}

// State returns exactly one of BudgetOver, BudgetNearLimit or BudgetUnder
func (b BudgetStatus) State() BudgetState {
	switch {
	case b.Spent > b.Budget:
		return BudgetOver
	case b.Percentage() >= NearLimitPercent:
		return BudgetNearLimit
	default:
		return BudgetUnder
	}
}

// budgetStatuses lists categories with a positive monthly budget. A name seen
// twice keeps its first position and the later budget.
func budgetStatuses(categories []Category, breakdown Breakdown) []BudgetStatus {
	statuses := []BudgetStatus{}
	index := map[string]int{}
	for _, c := range categories {
		if c.MonthlyBudget <= 0 {
			continue
		}
		status := BudgetStatus{
			Category: c.Name,
			Budget:   c.MonthlyBudget,
			Spent:    breakdown.Amount(c.Name),
		}
		if i, ok := index[c.Name]; ok {
			statuses[i] = status
			continue
		}
		index[c.Name] = len(statuses)
		statuses = append(statuses, status)
	}
	return statuses
}
