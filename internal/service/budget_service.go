package service

import (
	"context"

	"github.com/pennyledger/expense-server/internal/storage"
	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

// Alert thresholds for budget usage, evaluated highest first.
var alertThresholds = []struct {
	percent float64
	level   string
}{
	{100, "100"},
	{80, "80"},
	{50, "50"},
}

// BudgetService handles budget business logic, including the usage rollup.
type BudgetService struct {
	budgets  mongoconfig.IBudgetCollection
	expenses mongoconfig.IExpenseCollection
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	svc := &BudgetService{}
	if store != nil {
		svc.budgets = store.Budgets
		svc.expenses = store.Expenses
	}
	return svc
}

// Get returns the budget for the month, or nil when none is configured.
func (s *BudgetService) Get(ctx context.Context, month string) (*Budget, error) {
	if s.budgets == nil {
		return nil, ErrStorageUnavailable
	}

	row, err := s.budgets.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	budget := budgetFromStorage(row)
	return &budget, nil
}

// Upsert validates and writes the budget for the given month, replacing an
// existing one or creating it with created_at. The path month wins over any
// month carried in the body.
func (s *BudgetService) Upsert(ctx context.Context, month string, budget Budget) (*Budget, error) {
	if s.budgets == nil {
		return nil, ErrStorageUnavailable
	}

	budget.Month = month
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgets.Upsert(ctx, budgetToStorage(budget)); err != nil {
		return nil, err
	}

	row, err := s.budgets.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	stored := budgetFromStorage(row)
	return &stored, nil
}

// Usage sums the month's spend and reports it against the configured budget.
// With no budget set the percentage is 0 and no alert level is evaluated.
func (s *BudgetService) Usage(ctx context.Context, month string) (*BudgetUsage, error) {
	if s.budgets == nil || s.expenses == nil {
		return nil, ErrStorageUnavailable
	}

	start, end, err := MonthWindow(month)
	if err != nil {
		return nil, err
	}

	spent, err := s.expenses.SumInWindow(ctx, start, &end)
	if err != nil {
		return nil, err
	}

	row, err := s.budgets.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	amount := 0.0
	if row != nil {
		amount = row.Amount
	}

	percent := 0.0
	var alert *string
	if amount > 0 {
		percent = spent / amount * 100
		for _, threshold := range alertThresholds {
			if percent >= threshold.percent {
				level := threshold.level
				alert = &level
				break
			}
		}
	}

	return &BudgetUsage{
		Month:   month,
		Budget:  amount,
		Spent:   roundAmount(spent),
		Percent: roundAmount(percent),
		Alert:   alert,
	}, nil
}
