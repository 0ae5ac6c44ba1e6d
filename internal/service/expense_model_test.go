package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

func TestExpenseApplyDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	expense := Expense{Amount: 10}
	expense.ApplyDefaults(now)

	assert.Equal(t, PaymentOther, expense.PaymentMethod)
	assert.Equal(t, now, expense.Date)
}

func TestExpenseApplyDefaults_KeepsExplicitValues(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

	expense := Expense{Amount: 10, PaymentMethod: PaymentCard, Date: date}
	expense.ApplyDefaults(now)

	assert.Equal(t, PaymentCard, expense.PaymentMethod)
	assert.Equal(t, date, expense.Date)
}

func TestExpenseValidate(t *testing.T) {
	expense := Expense{Amount: 12.50, PaymentMethod: PaymentCash, Date: time.Now()}
	assert.NoError(t, expense.Validate())
}

func TestExpenseValidate_AmountMustBePositive(t *testing.T) {
	for _, amount := range []float64{0, -1, -0.01} {
		expense := Expense{Amount: amount, PaymentMethod: PaymentCash}
		assert.ErrorIs(t, expense.Validate(), ErrInvalidAmount, "amount %v", amount)
	}
}

func TestExpenseValidate_DescriptionLength(t *testing.T) {
	ok := Expense{Amount: 1, PaymentMethod: PaymentCash, Description: strings.Repeat("a", 300)}
	assert.NoError(t, ok.Validate())

	tooLong := Expense{Amount: 1, PaymentMethod: PaymentCash, Description: strings.Repeat("a", 301)}
	assert.ErrorIs(t, tooLong.Validate(), ErrDescriptionTooLong)
}

func TestExpenseValidate_PaymentMethod(t *testing.T) {
	for _, method := range []string{PaymentCash, PaymentCard, PaymentBank, PaymentWallet, PaymentOther} {
		expense := Expense{Amount: 1, PaymentMethod: method}
		assert.NoError(t, expense.Validate(), "method %q", method)
	}

	expense := Expense{Amount: 1, PaymentMethod: "crypto"}
	assert.ErrorIs(t, expense.Validate(), ErrInvalidPaymentMethod)
}

func TestExpenseListParams_ToFilter_LimitClamping(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		want  int64
	}{
		{"zero uses default", 0, 50},
		{"negative uses default", -5, 50},
		{"in range kept", 120, 120},
		{"above max clamped", 1000, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filter := ExpenseListParams{Limit: tc.limit}.toFilter()
			assert.Equal(t, tc.want, filter.Limit)
		})
	}
}

func TestExpenseListParams_ToFilter_CategoryRef(t *testing.T) {
	filter := ExpenseListParams{CategoryID: "groceries"}.toFilter()
	assert.Equal(t, mongoconfig.ParseCategoryRef("groceries"), filter.CategoryID)

	empty := ExpenseListParams{}.toFilter()
	assert.True(t, empty.CategoryID.IsZero())
}
