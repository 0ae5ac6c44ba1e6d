package mongoconfig

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildExpenseFilter translates an ExpenseFilter into a conjunctive store
// query. A nil or zero filter yields an empty query matching every document.
func BuildExpenseFilter(filter *ExpenseFilter) bson.M {
	query := bson.M{}
	if filter == nil {
		return query
	}

	if filter.Query != "" {
		query["description"] = bson.M{"$regex": filter.Query, "$options": "i"}
	}
	if !filter.CategoryID.IsZero() {
		query["category_id"] = filter.CategoryID
	}
	if filter.PaymentMethod != "" {
		query["payment_method"] = filter.PaymentMethod
	}
	if filter.DateFrom != nil || filter.DateTo != nil {
		dateQuery := bson.M{}
		if filter.DateFrom != nil {
			dateQuery["$gte"] = *filter.DateFrom
		}
		if filter.DateTo != nil {
			// date_to names a calendar day; bounding strictly below the next
			// day keeps every timestamp on that day regardless of time-of-day
			dateQuery["$lt"] = filter.DateTo.Add(24 * time.Hour)
		}
		query["date"] = dateQuery
	}

	return query
}

// DateWindow builds the [start, end) date predicate used by the rollups.
// A nil end leaves the window open ("up to now").
func DateWindow(start time.Time, end *time.Time) bson.M {
	window := bson.M{"$gte": start}
	if end != nil {
		window["$lt"] = *end
	}
	return bson.M{"date": window}
}

// SumPipeline sums amount over documents matching the given predicate.
func SumPipeline(match bson.M) []bson.M {
	return []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}},
	}
}

// BreakdownPipeline sums amount per category_id over documents matching the
// given predicate, largest group first. Documents without a category_id end
// up in a null-keyed group.
func BreakdownPipeline(match bson.M) []bson.M {
	return []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": "$category_id", "total": bson.M{"$sum": "$amount"}}},
		{"$sort": bson.M{"total": -1}},
	}
}
