package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
)

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Body ExpenseBody
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Status int
	Body   Expense
}

// expenseCreator is the interface for creating expenses.
type expenseCreator interface {
	Create(ctx context.Context, expense service.Expense) (*service.Expense, error)
}

// CreateExpenseHandler handles POST /api/expenses.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-expense",
		Method:      http.MethodPost,
		Path:        "/api/expenses",
		Summary:     "Create expense",
		Description: "Creates a new expense and returns the stored record.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	expense, err := bodyToService(input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createExpenseMs")
	}
	created, err := h.ExpenseService.Create(ctx, expense)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to create expense", err)
	}

	if logData != nil {
		logData.AddData("expenseID", created.ID.Hex())
	}

	return &CreateExpenseOutput{
		Status: http.StatusCreated,
		Body:   expenseFromService(*created),
	}, nil
}
