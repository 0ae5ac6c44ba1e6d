package mongoconfig

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense represents an expense document in the "expense" collection.
type Expense struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Amount        float64            `bson:"amount"`
	CategoryID    CategoryRef        `bson:"category_id,omitempty"`
	CategoryName  string             `bson:"category_name,omitempty"`
	Description   string             `bson:"description,omitempty"`
	PaymentMethod string             `bson:"payment_method"`
	Date          time.Time          `bson:"date"`
	AttachmentURL string             `bson:"attachment_url,omitempty"`
	UpdatedAt     *time.Time         `bson:"updated_at,omitempty"`
}

// ExpenseWrite is the caller-settable portion of an expense document,
// used for both inserts and replacements.
type ExpenseWrite struct {
	Amount        float64
	CategoryID    CategoryRef
	CategoryName  string
	Description   string
	PaymentMethod string
	Date          time.Time
	AttachmentURL string
}

// ExpenseFilter specifies filters for listing expenses. The zero value
// matches everything.
type ExpenseFilter struct {
	Query         string      // case-insensitive substring match on description
	CategoryID    CategoryRef // typed or literal, per the lenient ref policy
	PaymentMethod string
	DateFrom      *time.Time // inclusive lower bound
	DateTo        *time.Time // names a calendar day; the whole day is included
	Limit         int64
}

// CategoryTotal is one group of the category breakdown rollup. A zero
// CategoryID means the grouped expenses carried no category reference.
type CategoryTotal struct {
	CategoryID CategoryRef `bson:"_id"`
	Total      float64     `bson:"total"`
}

// IExpenseCollection defines the interface for expense storage operations,
// including the aggregation primitives the analytics build on.
type IExpenseCollection interface {
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)
	Insert(ctx context.Context, write *ExpenseWrite) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Expense, error)
	Replace(ctx context.Context, id primitive.ObjectID, write *ExpenseWrite) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	Recent(ctx context.Context, limit int64) ([]*Expense, error)
	SumInWindow(ctx context.Context, start time.Time, end *time.Time) (float64, error)
	BreakdownSince(ctx context.Context, start time.Time) ([]*CategoryTotal, error)
}
