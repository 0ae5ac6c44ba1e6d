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

// GetExpenseInput is the Huma input for fetching a single expense.
type GetExpenseInput struct {
	ID string `path:"id" doc:"Expense id"`
}

// GetExpenseOutput is the Huma output for fetching a single expense.
type GetExpenseOutput struct {
	Body Expense
}

// expenseGetter is the interface for fetching a single expense.
type expenseGetter interface {
	Get(ctx context.Context, id primitive.ObjectID) (*service.Expense, error)
}

// GetExpenseHandler handles GET /api/expenses/{id}.
type GetExpenseHandler struct {
	ExpenseService expenseGetter
}

// NewGetExpenseHandler creates a new GetExpenseHandler.
func NewGetExpenseHandler(svc expenseGetter) *GetExpenseHandler {
	return &GetExpenseHandler{ExpenseService: svc}
}

// Register registers the get expense endpoint with the Huma API.
func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/api/expenses/{id}",
		Summary:     "Get expense",
		Description: "Returns a single expense by id.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *GetExpenseInput) (*GetExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return nil, httperr.InvalidID()
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getExpenseMs")
	}
	expense, err := h.ExpenseService.Get(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to get expense", err)
	}
	if expense == nil {
		return nil, huma.NewError(http.StatusNotFound, "expense not found")
	}

	return &GetExpenseOutput{Body: expenseFromService(*expense)}, nil
}
