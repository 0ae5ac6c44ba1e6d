package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
)

// ListExpensesInput is the Huma input for the filtered expense list.
type ListExpensesInput struct {
	Query         string `query:"q" doc:"Case-insensitive substring match on description"`
	CategoryID    string `query:"category_id" doc:"Category id; malformed values match as literal strings"`
	PaymentMethod string `query:"payment_method" enum:"cash,card,bank,wallet,other" required:"false" doc:"Payment method"`
	DateFrom      string `query:"date_from" doc:"ISO date, e.g. 2024-01-01; inclusive lower bound"`
	DateTo        string `query:"date_to" doc:"ISO date, e.g. 2024-01-31; the whole day is included"`
	Limit         int    `query:"limit" minimum:"1" maximum:"500" default:"50" doc:"Maximum number of results"`
}

// ListExpensesOutput is the Huma output for the filtered expense list.
type ListExpensesOutput struct {
	Body []Expense
}

// expenseLister is the interface for listing expenses.
type expenseLister interface {
	List(ctx context.Context, params service.ExpenseListParams) ([]service.Expense, error)
}

// ListExpensesHandler handles GET /api/expenses.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/api/expenses",
		Summary:     "List expenses",
		Description: "Returns expenses matching the optional filters, newest first.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

// parseListExpensesInput translates the query parameters into service search
// parameters, resolving the date bounds.
func parseListExpensesInput(input *ListExpensesInput) (service.ExpenseListParams, error) {
	params := service.ExpenseListParams{
		Query:         input.Query,
		CategoryID:    input.CategoryID,
		PaymentMethod: input.PaymentMethod,
		Limit:         input.Limit,
	}

	if input.DateFrom != "" {
		from, err := parseDate(input.DateFrom)
		if err != nil {
			return service.ExpenseListParams{}, huma.NewError(http.StatusBadRequest, "invalid date_from", err)
		}
		params.DateFrom = &from
	}
	if input.DateTo != "" {
		to, err := parseDate(input.DateTo)
		if err != nil {
			return service.ExpenseListParams{}, huma.NewError(http.StatusBadRequest, "invalid date_to", err)
		}
		params.DateTo = &to
	}

	return params, nil
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	logData := logging.GetLogData(ctx)

	params, err := parseListExpensesInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listExpensesMs")
	}
	expenses, err := h.ExpenseService.List(ctx, params)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to list expenses", err)
	}

	if logData != nil {
		logData.AddData("expenseCount", len(expenses))
	}

	body := make([]Expense, len(expenses))
	for i, e := range expenses {
		body[i] = expenseFromService(e)
	}
	return &ListExpensesOutput{Body: body}, nil
}
