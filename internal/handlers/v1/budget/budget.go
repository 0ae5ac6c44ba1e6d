package budget

import (
	"time"

	"github.com/pennyledger/expense-server/internal/service"
)

// Budget is the wire representation of a monthly budget.
type Budget struct {
	ID          string             `json:"id" doc:"Budget id"`
	Month       string             `json:"month" doc:"Target month in YYYY-MM format"`
	Amount      float64            `json:"amount" doc:"Monthly budget amount"`
	PerCategory map[string]float64 `json:"per_category,omitempty" doc:"Optional mapping category id -> budget amount"`
	CreatedAt   string             `json:"created_at,omitempty" doc:"RFC3339 time of first insert"`
	UpdatedAt   string             `json:"updated_at,omitempty" doc:"RFC3339 time of the last write"`
}

// BudgetBody is the request body for upserting a budget. The month in the
// URL path wins over the one in the body.
type BudgetBody struct {
	Month       string             `json:"month" required:"true" pattern:"^\\d{4}-\\d{2}$" doc:"Target month in YYYY-MM format"`
	Amount      float64            `json:"amount" required:"true" exclusiveMinimum:"0" doc:"Monthly budget amount, must be greater than zero"`
	PerCategory map[string]float64 `json:"per_category,omitempty" doc:"Optional mapping category id -> budget amount"`
}

func bodyToService(body BudgetBody) service.Budget {
	return service.Budget{
		Month:       body.Month,
		Amount:      body.Amount,
		PerCategory: body.PerCategory,
	}
}

func budgetFromService(b service.Budget) Budget {
	out := Budget{
		ID:          b.ID.Hex(),
		Month:       b.Month,
		Amount:      b.Amount,
		PerCategory: b.PerCategory,
	}
	if b.CreatedAt != nil {
		out.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	if b.UpdatedAt != nil {
		out.UpdatedAt = b.UpdatedAt.Format(time.RFC3339)
	}
	return out
}
