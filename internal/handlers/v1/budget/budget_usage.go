package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
)

// BudgetUsageInput is the Huma input for the budget usage rollup.
type BudgetUsageInput struct {
	Month string `path:"month" doc:"Target month in YYYY-MM format"`
}

// BudgetUsageResponse is the spend-against-budget summary for one month.
type BudgetUsageResponse struct {
	Month   string  `json:"month" doc:"Target month"`
	Budget  float64 `json:"budget" doc:"Configured budget amount, 0 when none is set"`
	Spent   float64 `json:"spent" doc:"Total spend in the month"`
	Percent float64 `json:"percent" doc:"Spend as a percentage of the budget, 0 when no budget is set"`
	Alert   *string `json:"alert" doc:"Crossed alert threshold (50, 80, or 100), null otherwise"`
}

// BudgetUsageOutput is the Huma output for the budget usage rollup.
type BudgetUsageOutput struct {
	Body BudgetUsageResponse
}

// usageComputer is the interface for computing budget usage.
type usageComputer interface {
	Usage(ctx context.Context, month string) (*service.BudgetUsage, error)
}

// BudgetUsageHandler handles GET /api/budgets/{month}/usage.
type BudgetUsageHandler struct {
	BudgetService usageComputer
}

// NewBudgetUsageHandler creates a new BudgetUsageHandler.
func NewBudgetUsageHandler(svc usageComputer) *BudgetUsageHandler {
	return &BudgetUsageHandler{BudgetService: svc}
}

// Register registers the budget usage endpoint with the Huma API.
func (h *BudgetUsageHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-usage",
		Method:      http.MethodGet,
		Path:        "/api/budgets/{month}/usage",
		Summary:     "Budget usage",
		Description: "Returns the month's spend against its configured budget with alert level.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *BudgetUsageHandler) handle(ctx context.Context, input *BudgetUsageInput) (*BudgetUsageOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("budgetUsageMs")
	}
	usage, err := h.BudgetService.Usage(ctx, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to compute budget usage", err)
	}

	return &BudgetUsageOutput{Body: BudgetUsageResponse{
		Month:   usage.Month,
		Budget:  usage.Budget,
		Spent:   usage.Spent,
		Percent: usage.Percent,
		Alert:   usage.Alert,
	}}, nil
}
