package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

type mockCategoryCollection struct {
	mock.Mock
}

func (m *mockCategoryCollection) List(ctx context.Context) ([]*mongoconfig.Category, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*mongoconfig.Category)
	return rows, args.Error(1)
}

func (m *mockCategoryCollection) Insert(ctx context.Context, write *mongoconfig.CategoryWrite) (primitive.ObjectID, error) {
	args := m.Called(ctx, write)
	id, _ := args.Get(0).(primitive.ObjectID)
	return id, args.Error(1)
}

func (m *mockCategoryCollection) InsertMany(ctx context.Context, writes []*mongoconfig.CategoryWrite) error {
	args := m.Called(ctx, writes)
	return args.Error(0)
}

func (m *mockCategoryCollection) FindByID(ctx context.Context, id primitive.ObjectID) (*mongoconfig.Category, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*mongoconfig.Category)
	return row, args.Error(1)
}

func (m *mockCategoryCollection) Replace(ctx context.Context, id primitive.ObjectID, write *mongoconfig.CategoryWrite) (bool, error) {
	args := m.Called(ctx, id, write)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryCollection) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockExpenseCollection struct {
	mock.Mock
}

func (m *mockExpenseCollection) List(ctx context.Context, filter *mongoconfig.ExpenseFilter) ([]*mongoconfig.Expense, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*mongoconfig.Expense)
	return rows, args.Error(1)
}

func (m *mockExpenseCollection) Insert(ctx context.Context, write *mongoconfig.ExpenseWrite) (primitive.ObjectID, error) {
	args := m.Called(ctx, write)
	id, _ := args.Get(0).(primitive.ObjectID)
	return id, args.Error(1)
}

func (m *mockExpenseCollection) FindByID(ctx context.Context, id primitive.ObjectID) (*mongoconfig.Expense, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*mongoconfig.Expense)
	return row, args.Error(1)
}

func (m *mockExpenseCollection) Replace(ctx context.Context, id primitive.ObjectID, write *mongoconfig.ExpenseWrite) (bool, error) {
	args := m.Called(ctx, id, write)
	return args.Bool(0), args.Error(1)
}

func (m *mockExpenseCollection) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockExpenseCollection) Recent(ctx context.Context, limit int64) ([]*mongoconfig.Expense, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]*mongoconfig.Expense)
	return rows, args.Error(1)
}

func (m *mockExpenseCollection) SumInWindow(ctx context.Context, start time.Time, end *time.Time) (float64, error) {
	args := m.Called(ctx, start, end)
	total, _ := args.Get(0).(float64)
	return total, args.Error(1)
}

func (m *mockExpenseCollection) BreakdownSince(ctx context.Context, start time.Time) ([]*mongoconfig.CategoryTotal, error) {
	args := m.Called(ctx, start)
	rows, _ := args.Get(0).([]*mongoconfig.CategoryTotal)
	return rows, args.Error(1)
}

type mockBudgetCollection struct {
	mock.Mock
}

func (m *mockBudgetCollection) FindByMonth(ctx context.Context, month string) (*mongoconfig.Budget, error) {
	args := m.Called(ctx, month)
	row, _ := args.Get(0).(*mongoconfig.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetCollection) Upsert(ctx context.Context, write *mongoconfig.BudgetWrite) error {
	args := m.Called(ctx, write)
	return args.Error(0)
}
