package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
)

// GetBudgetInput is the Huma input for fetching a month's budget.
type GetBudgetInput struct {
	Month string `path:"month" doc:"Target month in YYYY-MM format"`
}

// GetBudgetOutput is the Huma output for fetching a month's budget. The body
// is null when no budget is configured for the month.
type GetBudgetOutput struct {
	Body *Budget
}

// budgetGetter is the interface for fetching budgets.
type budgetGetter interface {
	Get(ctx context.Context, month string) (*service.Budget, error)
}

// GetBudgetHandler handles GET /api/budgets/{month}.
type GetBudgetHandler struct {
	BudgetService budgetGetter
}

// NewGetBudgetHandler creates a new GetBudgetHandler.
func NewGetBudgetHandler(svc budgetGetter) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetService: svc}
}

// Register registers the get budget endpoint with the Huma API.
func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/api/budgets/{month}",
		Summary:     "Get budget",
		Description: "Returns the budget for the month, or null when none is set.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getBudgetMs")
	}
	budget, err := h.BudgetService.Get(ctx, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to get budget", err)
	}
	if budget == nil {
		return &GetBudgetOutput{}, nil
	}

	body := budgetFromService(*budget)
	return &GetBudgetOutput{Body: &body}, nil
}
