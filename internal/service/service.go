package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/pennyledger/expense-server/internal/storage"
)

// Validation errors name the offending field so callers can surface
// field-level detail.
var (
	ErrStorageUnavailable   = storage.ErrNotConfigured
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidName          = errors.New("name must be between 1 and 50 characters")
	ErrDescriptionTooLong   = errors.New("description must be at most 300 characters")
	ErrInvalidPaymentMethod = errors.New("payment_method must be one of cash, card, bank, wallet, other")
	ErrInvalidMonth         = errors.New("month must match YYYY-MM")
	ErrInvalidPeriod        = errors.New("period must be one of day, week, month, year")
)

// IsValidationError reports whether err is one of the schema validation
// errors, as opposed to a storage failure.
func IsValidationError(err error) bool {
	for _, validation := range []error{
		ErrInvalidAmount,
		ErrInvalidName,
		ErrDescriptionTooLong,
		ErrInvalidPaymentMethod,
		ErrInvalidMonth,
		ErrInvalidPeriod,
	} {
		if errors.Is(err, validation) {
			return true
		}
	}
	return false
}

// Service holds all business logic services.
type Service struct {
	Category  *CategoryService
	Expense   *ExpenseService
	Budget    *BudgetService
	Analytics *AnalyticsService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Category:  NewCategoryService(store),
		Expense:   NewExpenseService(store),
		Budget:    NewBudgetService(store),
		Analytics: NewAnalyticsService(store),
	}
}

// roundAmount rounds an aggregate sum to 2 decimal places for output.
func roundAmount(v float64) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return rounded
}
