package mongoconfig

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BudgetCollectionName is the backing collection for budgets.
const BudgetCollectionName = "budget"

var _ IBudgetCollection = (*BudgetCollection)(nil)

type BudgetCollection struct {
	coll *mongo.Collection
}

func NewBudgetCollection(db *mongo.Database) *BudgetCollection {
	return &BudgetCollection{coll: db.Collection(BudgetCollectionName)}
}

func (c *BudgetCollection) FindByMonth(ctx context.Context, month string) (*Budget, error) {
	var budget Budget
	err := c.coll.FindOne(ctx, bson.M{"month": month}).Decode(&budget)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// Upsert replaces the budget for the write's month, creating it with
// created_at when no document for that month exists yet.
func (c *BudgetCollection) Upsert(ctx context.Context, write *BudgetWrite) error {
	now := time.Now().UTC()
	set := bson.M{
		"month":      write.Month,
		"amount":     write.Amount,
		"updated_at": now,
	}
	if len(write.PerCategory) > 0 {
		set["per_category"] = write.PerCategory
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": now},
	}
	if len(write.PerCategory) == 0 {
		// writing a month replaces its fields, so a write without
		// per-category allocations clears any previous ones
		update["$unset"] = bson.M{"per_category": ""}
	}
	_, err := c.coll.UpdateOne(ctx, bson.M{"month": write.Month}, update, options.Update().SetUpsert(true))
	return err
}
