package service

import (
	"context"
	"time"

	"github.com/pennyledger/expense-server/internal/storage"
	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

const recentExpenseCount = 10

// Dashboard is the period summary: total spend, recent expenses, and the
// per-category breakdown.
type Dashboard struct {
	Period     string
	TotalSpent float64
	Recent     []Expense
	Breakdown  []BreakdownEntry
}

// BreakdownEntry is one category group of the dashboard breakdown. A nil
// CategoryID groups the expenses that carried no category reference; a nil
// CategoryName means the reference did not resolve to a known category.
type BreakdownEntry struct {
	CategoryID   *string
	CategoryName *string
	Total        float64
}

// MonthTotal is one row of the year-over-year analytics table.
type MonthTotal struct {
	Month string
	Total float64
}

// AnalyticsService computes the dashboard and monthly rollups.
type AnalyticsService struct {
	expenses   mongoconfig.IExpenseCollection
	categories mongoconfig.ICategoryCollection
	now        func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store *storage.Storage) *AnalyticsService {
	svc := &AnalyticsService{now: time.Now}
	if store != nil {
		svc.expenses = store.Expenses
		svc.categories = store.Categories
	}
	return svc
}

// Dashboard computes the summary for the given period keyword.
func (s *AnalyticsService) Dashboard(ctx context.Context, period string) (*Dashboard, error) {
	if s.expenses == nil || s.categories == nil {
		return nil, ErrStorageUnavailable
	}

	start, err := PeriodStart(s.now().UTC(), period)
	if err != nil {
		return nil, err
	}

	total, err := s.expenses.SumInWindow(ctx, start, nil)
	if err != nil {
		return nil, err
	}

	rows, err := s.expenses.Recent(ctx, recentExpenseCount)
	if err != nil {
		return nil, err
	}
	recent := make([]Expense, len(rows))
	for i, row := range rows {
		recent[i] = expenseFromStorage(row)
	}

	totals, err := s.expenses.BreakdownSince(ctx, start)
	if err != nil {
		return nil, err
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := make([]BreakdownEntry, len(totals))
	for i, group := range totals {
		breakdown[i] = resolveBreakdownEntry(group, names)
	}

	return &Dashboard{
		Period:     period,
		TotalSpent: roundAmount(total),
		Recent:     recent,
		Breakdown:  breakdown,
	}, nil
}

// Monthly computes the zero-filled 12-month totals table for a year.
func (s *AnalyticsService) Monthly(ctx context.Context, year int) ([]MonthTotal, error) {
	if s.expenses == nil {
		return nil, ErrStorageUnavailable
	}

	results := make([]MonthTotal, 0, 12)
	for m := time.January; m <= time.December; m++ {
		start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		total, err := s.expenses.SumInWindow(ctx, start, &end)
		if err != nil {
			return nil, err
		}
		results = append(results, MonthTotal{
			Month: monthKey(year, m),
			Total: roundAmount(total),
		})
	}
	return results, nil
}

// categoryNames maps every known category's canonical id string to its name.
func (s *AnalyticsService) categoryNames(ctx context.Context) (map[string]string, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.ID.Hex()] = row.Name
	}
	return names, nil
}

// resolveBreakdownEntry renders one group of the breakdown, resolving the
// display name by string-form lookup. Only typed references can resolve;
// raw-string refs and unknown ids yield a null name.
func resolveBreakdownEntry(group *mongoconfig.CategoryTotal, names map[string]string) BreakdownEntry {
	entry := BreakdownEntry{Total: roundAmount(group.Total)}
	if group.CategoryID.IsZero() {
		return entry
	}

	id := group.CategoryID.String()
	entry.CategoryID = &id
	if _, typed := group.CategoryID.ObjectID(); typed {
		if name, ok := names[id]; ok {
			entry.CategoryName = &name
		}
	}
	return entry
}
