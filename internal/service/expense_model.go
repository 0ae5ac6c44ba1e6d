package service

import (
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

// Payment methods accepted for an expense.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentBank   = "bank"
	PaymentWallet = "wallet"
	PaymentOther  = "other"
)

// Expense represents an expense in the service layer.
type Expense struct {
	ID            primitive.ObjectID
	Amount        float64
	CategoryID    mongoconfig.CategoryRef
	CategoryName  string
	Description   string
	PaymentMethod string
	Date          time.Time
	AttachmentURL string
	UpdatedAt     *time.Time
}

// ApplyDefaults fills the schema defaults: payment method "other" and the
// given timestamp when no date was supplied.
func (e *Expense) ApplyDefaults(now time.Time) {
	if e.PaymentMethod == "" {
		e.PaymentMethod = PaymentOther
	}
	if e.Date.IsZero() {
		e.Date = now
	}
}

// Validate checks the expense against its schema constraints. Defaults must
// be applied first. The category reference is deliberately not checked here:
// malformed values are kept as opaque strings rather than rejected.
func (e Expense) Validate() error {
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if utf8.RuneCountInString(e.Description) > 300 {
		return ErrDescriptionTooLong
	}
	switch e.PaymentMethod {
	case PaymentCash, PaymentCard, PaymentBank, PaymentWallet, PaymentOther:
	default:
		return ErrInvalidPaymentMethod
	}
	return nil
}

// ExpenseListParams are the optional search parameters for listing expenses.
type ExpenseListParams struct {
	Query         string
	CategoryID    string
	PaymentMethod string
	DateFrom      *time.Time
	DateTo        *time.Time
	Limit         int
}

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// toFilter translates the search parameters into a store filter, clamping
// the limit to 1..500 with a default of 50.
func (p ExpenseListParams) toFilter() *mongoconfig.ExpenseFilter {
	limit := p.Limit
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	filter := &mongoconfig.ExpenseFilter{
		Query:         p.Query,
		PaymentMethod: p.PaymentMethod,
		DateFrom:      p.DateFrom,
		DateTo:        p.DateTo,
		Limit:         int64(limit),
	}
	if p.CategoryID != "" {
		filter.CategoryID = mongoconfig.ParseCategoryRef(p.CategoryID)
	}
	return filter
}

func expenseToStorage(e Expense) *mongoconfig.ExpenseWrite {
	return &mongoconfig.ExpenseWrite{
		Amount:        e.Amount,
		CategoryID:    e.CategoryID,
		CategoryName:  e.CategoryName,
		Description:   e.Description,
		PaymentMethod: e.PaymentMethod,
		Date:          e.Date,
		AttachmentURL: e.AttachmentURL,
	}
}

func expenseFromStorage(row *mongoconfig.Expense) Expense {
	return Expense{
		ID:            row.ID,
		Amount:        row.Amount,
		CategoryID:    row.CategoryID,
		CategoryName:  row.CategoryName,
		Description:   row.Description,
		PaymentMethod: row.PaymentMethod,
		Date:          row.Date,
		AttachmentURL: row.AttachmentURL,
		UpdatedAt:     row.UpdatedAt,
	}
}
