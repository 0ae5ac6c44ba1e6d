package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
)

// UpdateExpenseInput is the Huma input for replacing an expense.
type UpdateExpenseInput struct {
	ID   string `path:"id" doc:"Expense id"`
	Body ExpenseBody
}

// UpdateExpenseOutput is the Huma output for replacing an expense.
type UpdateExpenseOutput struct {
	Body Expense
}

// expenseUpdater is the interface for replacing expenses.
type expenseUpdater interface {
	Update(ctx context.Context, id primitive.ObjectID, expense service.Expense) (*service.Expense, error)
}

// UpdateExpenseHandler handles PUT /api/expenses/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(svc expenseUpdater) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPut,
		Path:        "/api/expenses/{id}",
		Summary:     "Replace expense",
		Description: "Replaces the expense's fields and returns the stored record.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return nil, httperr.InvalidID()
	}

	expense, err := bodyToService(input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateExpenseMs")
	}
	updated, err := h.ExpenseService.Update(ctx, id, expense)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to update expense", err)
	}
	if updated == nil {
		return nil, huma.NewError(http.StatusNotFound, "expense not found")
	}

	return &UpdateExpenseOutput{Body: expenseFromService(*updated)}, nil
}
