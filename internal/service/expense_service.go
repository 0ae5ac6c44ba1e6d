package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pennyledger/expense-server/internal/storage"
	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

// ExpenseService handles expense business logic.
type ExpenseService struct {
	expenses mongoconfig.IExpenseCollection
	now      func() time.Time
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage) *ExpenseService {
	svc := &ExpenseService{now: time.Now}
	if store != nil {
		svc.expenses = store.Expenses
	}
	return svc
}

// List returns expenses matching the search parameters, newest first.
func (s *ExpenseService) List(ctx context.Context, params ExpenseListParams) ([]Expense, error) {
	if s.expenses == nil {
		return nil, ErrStorageUnavailable
	}

	rows, err := s.expenses.List(ctx, params.toFilter())
	if err != nil {
		return nil, err
	}

	expenses := make([]Expense, len(rows))
	for i, row := range rows {
		expenses[i] = expenseFromStorage(row)
	}
	return expenses, nil
}

// Create applies defaults, validates, and inserts an expense, returning the
// stored record.
func (s *ExpenseService) Create(ctx context.Context, expense Expense) (*Expense, error) {
	if s.expenses == nil {
		return nil, ErrStorageUnavailable
	}

	expense.ApplyDefaults(s.now().UTC())
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	id, err := s.expenses.Insert(ctx, expenseToStorage(expense))
	if err != nil {
		return nil, err
	}

	row, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	created := expenseFromStorage(row)
	return &created, nil
}

// Get returns the expense with the given id, or nil when none exists.
func (s *ExpenseService) Get(ctx context.Context, id primitive.ObjectID) (*Expense, error) {
	if s.expenses == nil {
		return nil, ErrStorageUnavailable
	}

	row, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	expense := expenseFromStorage(row)
	return &expense, nil
}

// Update replaces the expense's fields. A nil result with a nil error means
// no expense with that id exists.
func (s *ExpenseService) Update(ctx context.Context, id primitive.ObjectID, expense Expense) (*Expense, error) {
	if s.expenses == nil {
		return nil, ErrStorageUnavailable
	}

	expense.ApplyDefaults(s.now().UTC())
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	matched, err := s.expenses.Replace(ctx, id, expenseToStorage(expense))
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, nil
	}

	row, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	updated := expenseFromStorage(row)
	return &updated, nil
}

// Delete removes the expense, reporting whether it existed.
func (s *ExpenseService) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if s.expenses == nil {
		return false, ErrStorageUnavailable
	}
	return s.expenses.Delete(ctx, id)
}
