package expense

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pennyledger/expense-server/internal/service"
	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

type mockExpenseService struct {
	mock.Mock
}

func (m *mockExpenseService) List(ctx context.Context, params service.ExpenseListParams) ([]service.Expense, error) {
	args := m.Called(ctx, params)
	expenses, _ := args.Get(0).([]service.Expense)
	return expenses, args.Error(1)
}

func (m *mockExpenseService) Create(ctx context.Context, expense service.Expense) (*service.Expense, error) {
	args := m.Called(ctx, expense)
	created, _ := args.Get(0).(*service.Expense)
	return created, args.Error(1)
}

func (m *mockExpenseService) Get(ctx context.Context, id primitive.ObjectID) (*service.Expense, error) {
	args := m.Called(ctx, id)
	expense, _ := args.Get(0).(*service.Expense)
	return expense, args.Error(1)
}

func (m *mockExpenseService) Update(ctx context.Context, id primitive.ObjectID, expense service.Expense) (*service.Expense, error) {
	args := m.Called(ctx, id, expense)
	updated, _ := args.Get(0).(*service.Expense)
	return updated, args.Error(1)
}

func (m *mockExpenseService) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockExpenseService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListExpensesHandler(svc).Register(api)
	NewCreateExpenseHandler(svc).Register(api)
	NewGetExpenseHandler(svc).Register(api)
	NewUpdateExpenseHandler(svc).Register(api)
	NewDeleteExpenseHandler(svc).Register(api)
	return api
}

// -- parseListExpensesInput unit tests --

func TestParseListExpensesInput_Defaults(t *testing.T) {
	params, err := parseListExpensesInput(&ListExpensesInput{Limit: 50})
	assert.NoError(t, err)
	assert.Equal(t, 50, params.Limit)
	assert.Nil(t, params.DateFrom)
	assert.Nil(t, params.DateTo)
}

func TestParseListExpensesInput_DateBounds(t *testing.T) {
	input := &ListExpensesInput{
		DateFrom: "2024-01-01",
		DateTo:   "2024-01-31",
		Limit:    50,
	}

	params, err := parseListExpensesInput(input)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *params.DateFrom)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *params.DateTo)
}

func TestParseListExpensesInput_InvalidDate(t *testing.T) {
	_, err := parseListExpensesInput(&ListExpensesInput{DateFrom: "yesterday"})
	assert.Error(t, err)

	_, err = parseListExpensesInput(&ListExpensesInput{DateTo: "31/01/2024"})
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("2024-06-01T10:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC), date)

	date, err = parseDate("2024-06-01")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), date)
}

// -- HTTP integration tests --

func TestHTTP_ListExpenses(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := primitive.NewObjectID()

	mockSvc := new(mockExpenseService)
	mockSvc.On("List", mock.Anything, mock.MatchedBy(func(p service.ExpenseListParams) bool {
		return p.Query == "coffee" && p.PaymentMethod == "card" && p.Limit == 50
	})).Return([]service.Expense{
		{ID: id, Amount: 4.50, PaymentMethod: "card", Date: now, Description: "coffee beans"},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/expenses?q=coffee&payment_method=card")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Expense
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, id.Hex(), body[0].ID)
	assert.Equal(t, 4.50, body[0].Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListExpenses_LimitOutOfRange(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Get("/api/expenses?limit=501")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "List")
}

func TestHTTP_ListExpenses_InvalidPaymentMethod(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Get("/api/expenses?payment_method=crypto")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "List")
}

func TestHTTP_CreateExpense(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := primitive.NewObjectID()
	categoryID := primitive.NewObjectID()

	mockSvc := new(mockExpenseService)
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(e service.Expense) bool {
		ref, typed := e.CategoryID.ObjectID()
		return e.Amount == 12.99 && typed && ref == categoryID
	})).Return(&service.Expense{
		ID:            id,
		Amount:        12.99,
		CategoryID:    mongoconfig.RefFromObjectID(categoryID),
		PaymentMethod: "other",
		Date:          now,
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/expenses", map[string]any{
		"amount":      12.99,
		"category_id": categoryID.Hex(),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Expense
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.Hex(), body.ID)
	assert.Equal(t, categoryID.Hex(), body.CategoryID)
	assert.Equal(t, "other", body.PaymentMethod)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_ZeroAmount(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Post("/api/expenses", map[string]any{
		"amount": 0,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateExpense_InvalidDate(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Post("/api/expenses", map[string]any{
		"amount": 5,
		"date":   "next tuesday",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateExpense_MalformedCategoryKeptAsLiteral(t *testing.T) {
	id := primitive.NewObjectID()

	mockSvc := new(mockExpenseService)
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(e service.Expense) bool {
		_, typed := e.CategoryID.ObjectID()
		return !typed && e.CategoryID.String() == "groceries"
	})).Return(&service.Expense{
		ID:            id,
		Amount:        5,
		CategoryID:    mongoconfig.ParseCategoryRef("groceries"),
		PaymentMethod: "other",
		Date:          time.Now(),
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/expenses", map[string]any{
		"amount":      5,
		"category_id": "groceries",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Expense
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "groceries", body.CategoryID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetExpense_InvalidID(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Get("/api/expenses/not-an-id")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid id")
	mockSvc.AssertNotCalled(t, "Get")
}

func TestHTTP_GetExpense_NotFound(t *testing.T) {
	id := primitive.NewObjectID()

	mockSvc := new(mockExpenseService)
	mockSvc.On("Get", mock.Anything, id).Return((*service.Expense)(nil), nil)

	resp := newTestAPI(t, mockSvc).Get("/api/expenses/" + id.Hex())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateExpense(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := primitive.NewObjectID()

	mockSvc := new(mockExpenseService)
	mockSvc.On("Update", mock.Anything, id, mock.Anything).Return(&service.Expense{
		ID: id, Amount: 20, PaymentMethod: "card", Date: now,
	}, nil)

	resp := newTestAPI(t, mockSvc).Put("/api/expenses/"+id.Hex(), map[string]any{
		"amount":         20,
		"payment_method": "card",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Expense
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 20.0, body.Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_NotFound(t *testing.T) {
	id := primitive.NewObjectID()

	mockSvc := new(mockExpenseService)
	mockSvc.On("Update", mock.Anything, id, mock.Anything).Return((*service.Expense)(nil), nil)

	resp := newTestAPI(t, mockSvc).Put("/api/expenses/"+id.Hex(), map[string]any{
		"amount": 20,
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteExpense(t *testing.T) {
	id := primitive.NewObjectID()

	mockSvc := new(mockExpenseService)
	mockSvc.On("Delete", mock.Anything, id).Return(true, nil)

	resp := newTestAPI(t, mockSvc).Delete("/api/expenses/" + id.Hex())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteExpenseResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "deleted", body.Status)
}

func TestHTTP_DeleteExpense_StorageUnavailable(t *testing.T) {
	id := primitive.NewObjectID()

	mockSvc := new(mockExpenseService)
	mockSvc.On("Delete", mock.Anything, id).Return(false, service.ErrStorageUnavailable)

	resp := newTestAPI(t, mockSvc).Delete("/api/expenses/" + id.Hex())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "Database not configured")
}
