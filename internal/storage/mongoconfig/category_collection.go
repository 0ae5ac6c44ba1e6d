package mongoconfig

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryCollectionName is the backing collection for categories.
const CategoryCollectionName = "category"

var _ ICategoryCollection = (*CategoryCollection)(nil)

type CategoryCollection struct {
	coll *mongo.Collection
}

func NewCategoryCollection(db *mongo.Database) *CategoryCollection {
	return &CategoryCollection{coll: db.Collection(CategoryCollectionName)}
}

func (c *CategoryCollection) List(ctx context.Context) ([]*Category, error) {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var categories []*Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *CategoryCollection) Insert(ctx context.Context, write *CategoryWrite) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, categoryWriteToDoc(write))
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (c *CategoryCollection) InsertMany(ctx context.Context, writes []*CategoryWrite) error {
	docs := make([]interface{}, len(writes))
	for i, write := range writes {
		docs[i] = categoryWriteToDoc(write)
	}
	_, err := c.coll.InsertMany(ctx, docs)
	return err
}

func (c *CategoryCollection) FindByID(ctx context.Context, id primitive.ObjectID) (*Category, error) {
	var category Category
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Replace overwrites the caller-settable fields of the category and stamps
// updated_at. The second return value reports whether a document matched.
func (c *CategoryCollection) Replace(ctx context.Context, id primitive.ObjectID, write *CategoryWrite) (bool, error) {
	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, categoryReplaceUpdate(write, time.Now().UTC()))
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (c *CategoryCollection) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func categoryWriteToDoc(write *CategoryWrite) bson.M {
	doc := bson.M{
		"name":      write.Name,
		"is_custom": write.IsCustom,
	}
	if write.Icon != "" {
		doc["icon"] = write.Icon
	}
	if write.Color != "" {
		doc["color"] = write.Color
	}
	return doc
}

// categoryReplaceUpdate builds the update for a full replacement: optional
// fields absent from the write are unset so stale values do not survive.
func categoryReplaceUpdate(write *CategoryWrite, now time.Time) bson.M {
	set := categoryWriteToDoc(write)
	set["updated_at"] = now

	unset := bson.M{}
	for _, key := range []string{"icon", "color"} {
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
