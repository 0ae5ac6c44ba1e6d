package mongoconfig

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExpenseCollectionName is the backing collection for expenses.
const ExpenseCollectionName = "expense"

var _ IExpenseCollection = (*ExpenseCollection)(nil)

type ExpenseCollection struct {
	coll *mongo.Collection
}

func NewExpenseCollection(db *mongo.Database) *ExpenseCollection {
	return &ExpenseCollection{coll: db.Collection(ExpenseCollectionName)}
}

// List returns expenses matching the filter, newest first, truncated to the
// filter's limit when one is set.
func (c *ExpenseCollection) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if filter != nil && filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := c.coll.Find(ctx, BuildExpenseFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	var expenses []*Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (c *ExpenseCollection) Insert(ctx context.Context, write *ExpenseWrite) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, expenseWriteToDoc(write))
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (c *ExpenseCollection) FindByID(ctx context.Context, id primitive.ObjectID) (*Expense, error) {
	var expense Expense
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&expense)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// Replace overwrites the caller-settable fields of the expense and stamps
// updated_at. The second return value reports whether a document matched.
func (c *ExpenseCollection) Replace(ctx context.Context, id primitive.ObjectID, write *ExpenseWrite) (bool, error) {
	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, expenseReplaceUpdate(write, time.Now().UTC()))
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (c *ExpenseCollection) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Recent returns the most recently dated expenses across the whole collection.
func (c *ExpenseCollection) Recent(ctx context.Context, limit int64) ([]*Expense, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(limit)
	cursor, err := c.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var expenses []*Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// SumInWindow sums amount over expenses dated within [start, end). A nil end
// leaves the window open. An empty match set sums to 0.
func (c *ExpenseCollection) SumInWindow(ctx context.Context, start time.Time, end *time.Time) (float64, error) {
	cursor, err := c.coll.Aggregate(ctx, SumPipeline(DateWindow(start, end)))
	if err != nil {
		return 0, err
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// BreakdownSince groups expenses dated at or after start by category_id and
// sums amount per group, largest first.
func (c *ExpenseCollection) BreakdownSince(ctx context.Context, start time.Time) ([]*CategoryTotal, error) {
	cursor, err := c.coll.Aggregate(ctx, BreakdownPipeline(DateWindow(start, nil)))
	if err != nil {
		return nil, err
	}
	var totals []*CategoryTotal
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

func expenseWriteToDoc(write *ExpenseWrite) bson.M {
	doc := bson.M{
		"amount":         write.Amount,
		"payment_method": write.PaymentMethod,
		"date":           write.Date,
	}
	if !write.CategoryID.IsZero() {
		doc["category_id"] = write.CategoryID
	}
	if write.CategoryName != "" {
		doc["category_name"] = write.CategoryName
	}
	if write.Description != "" {
		doc["description"] = write.Description
	}
	if write.AttachmentURL != "" {
		doc["attachment_url"] = write.AttachmentURL
	}
	return doc
}

// expenseReplaceUpdate builds the update for a full replacement: optional
// fields absent from the write are unset so stale values do not survive.
func expenseReplaceUpdate(write *ExpenseWrite, now time.Time) bson.M {
	set := expenseWriteToDoc(write)
	set["updated_at"] = now

	unset := bson.M{}
	for _, key := range []string{"category_id", "category_name", "description", "attachment_url"} {
		if _, ok := set[key]; !ok {
			unset[key] = ""
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}
