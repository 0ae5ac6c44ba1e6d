package mongoconfig

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Budget represents a budget document in the "budget" collection. Budgets
// are keyed by month; the unique index on month backs the upsert semantics.
type Budget struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Month       string             `bson:"month"`
	Amount      float64            `bson:"amount"`
	PerCategory map[string]float64 `bson:"per_category,omitempty"`
	CreatedAt   *time.Time         `bson:"created_at,omitempty"`
	UpdatedAt   *time.Time         `bson:"updated_at,omitempty"`
}

// BudgetWrite is the caller-settable portion of a budget document.
type BudgetWrite struct {
	Month       string
	Amount      float64
	PerCategory map[string]float64
}

// IBudgetCollection defines the interface for budget storage operations.
type IBudgetCollection interface {
	FindByMonth(ctx context.Context, month string) (*Budget, error)
	Upsert(ctx context.Context, write *BudgetWrite) error
}
