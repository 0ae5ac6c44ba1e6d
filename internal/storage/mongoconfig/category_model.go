package mongoconfig

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category represents a category document in the "category" collection.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Icon      string             `bson:"icon,omitempty"`
	Color     string             `bson:"color,omitempty"`
	IsCustom  bool               `bson:"is_custom"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty"`
}

// CategoryWrite is the caller-settable portion of a category document,
// used for both inserts and replacements.
type CategoryWrite struct {
	Name     string
	Icon     string
	Color    string
	IsCustom bool
}

// ICategoryCollection defines the interface for category storage operations.
// This abstraction allows swapping the implementation (e.g. Mongo) without
// changing callers.
type ICategoryCollection interface {
	List(ctx context.Context) ([]*Category, error)
	Insert(ctx context.Context, write *CategoryWrite) (primitive.ObjectID, error)
	InsertMany(ctx context.Context, writes []*CategoryWrite) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Category, error)
	Replace(ctx context.Context, id primitive.ObjectID, write *CategoryWrite) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
