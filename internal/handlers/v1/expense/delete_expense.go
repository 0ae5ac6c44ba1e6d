package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
)

// DeleteExpenseInput is the Huma input for deleting an expense.
type DeleteExpenseInput struct {
	ID string `path:"id" doc:"Expense id"`
}

// DeleteExpenseResponse is the response body for deleting an expense.
type DeleteExpenseResponse struct {
	Status string `json:"status" doc:"Deletion status"`
}

// DeleteExpenseOutput is the Huma output for deleting an expense.
type DeleteExpenseOutput struct {
	Body DeleteExpenseResponse
}

// expenseDeleter is the interface for deleting expenses.
type expenseDeleter interface {
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// DeleteExpenseHandler handles DELETE /api/expenses/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/api/expenses/{id}",
		Summary:     "Delete expense",
		Description: "Removes the expense.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return nil, httperr.InvalidID()
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteExpenseMs")
	}
	deleted, err := h.ExpenseService.Delete(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to delete expense", err)
	}
	if !deleted {
		return nil, huma.NewError(http.StatusNotFound, "expense not found")
	}

	return &DeleteExpenseOutput{Body: DeleteExpenseResponse{Status: "deleted"}}, nil
}
