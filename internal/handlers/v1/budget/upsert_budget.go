package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
)

// UpsertBudgetInput is the Huma input for upserting a month's budget.
type UpsertBudgetInput struct {
	Month string `path:"month" doc:"Target month in YYYY-MM format"`
	Body  BudgetBody
}

// UpsertBudgetOutput is the Huma output for upserting a month's budget.
type UpsertBudgetOutput struct {
	Body Budget
}

// budgetUpserter is the interface for upserting budgets.
type budgetUpserter interface {
	Upsert(ctx context.Context, month string, budget service.Budget) (*service.Budget, error)
}

// UpsertBudgetHandler handles PUT /api/budgets/{month}.
type UpsertBudgetHandler struct {
	BudgetService budgetUpserter
}

// NewUpsertBudgetHandler creates a new UpsertBudgetHandler.
func NewUpsertBudgetHandler(svc budgetUpserter) *UpsertBudgetHandler {
	return &UpsertBudgetHandler{BudgetService: svc}
}

// Register registers the upsert budget endpoint with the Huma API.
func (h *UpsertBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-budget",
		Method:      http.MethodPut,
		Path:        "/api/budgets/{month}",
		Summary:     "Upsert budget",
		Description: "Replaces the month's budget, creating it when absent.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *UpsertBudgetHandler) handle(ctx context.Context, input *UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("upsertBudgetMs")
	}
	stored, err := h.BudgetService.Upsert(ctx, input.Month, bodyToService(input.Body))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to upsert budget", err)
	}

	if logData != nil {
		logData.AddData("budgetMonth", input.Month)
	}

	return &UpsertBudgetOutput{Body: budgetFromService(*stored)}, nil
}
