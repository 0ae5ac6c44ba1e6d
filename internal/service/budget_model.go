package service

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Budget represents a monthly budget in the service layer. Budgets are keyed
// by month with upsert semantics.
type Budget struct {
	ID          primitive.ObjectID
	Month       string
	Amount      float64
	PerCategory map[string]float64
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// Validate checks the budget against its schema constraints. The month check
// is a format check only.
func (b Budget) Validate() error {
	if !monthPattern.MatchString(b.Month) {
		return ErrInvalidMonth
	}
	if b.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// BudgetUsage is the spend-against-budget summary for one month. Alert is
// nil unless a budget is configured and a threshold was crossed.
type BudgetUsage struct {
	Month   string
	Budget  float64
	Spent   float64
	Percent float64
	Alert   *string
}

func budgetToStorage(b Budget) *mongoconfig.BudgetWrite {
	return &mongoconfig.BudgetWrite{
		Month:       b.Month,
		Amount:      b.Amount,
		PerCategory: b.PerCategory,
	}
}

func budgetFromStorage(row *mongoconfig.Budget) Budget {
	return Budget{
		ID:          row.ID,
		Month:       row.Month,
		Amount:      row.Amount,
		PerCategory: row.PerCategory,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
