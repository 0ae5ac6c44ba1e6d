package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pennyledger/expense-server/internal/storage"
	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

// defaultCategories seeds the category collection the first time it is
// listed and found empty. The unique index on name keeps a concurrent
// double-seed from duplicating entries.
var defaultCategories = []*mongoconfig.CategoryWrite{
	{Name: "Food", Icon: "Utensils", Color: "rose"},
	{Name: "Transport", Icon: "Car", Color: "sky"},
	{Name: "Bills", Icon: "Receipt", Color: "amber"},
	{Name: "Shopping", Icon: "ShoppingCart", Color: "violet"},
	{Name: "Health", Icon: "Heart", Color: "emerald"},
	{Name: "Entertainment", Icon: "Music", Color: "indigo"},
	{Name: "Travel", Icon: "Plane", Color: "cyan"},
}

// CategoryService handles category business logic.
type CategoryService struct {
	categories mongoconfig.ICategoryCollection
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	svc := &CategoryService{}
	if store != nil {
		svc.categories = store.Categories
	}
	return svc
}

// List returns all categories, seeding the defaults when the collection is
// empty.
func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	if s.categories == nil {
		return nil, ErrStorageUnavailable
	}

	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		// losing a concurrent double-seed to the unique name index is
		// fine, the re-list picks up the winner's rows
		if err := s.categories.InsertMany(ctx, defaultCategories); err != nil && !mongo.IsDuplicateKeyError(err) {
			return nil, err
		}
		rows, err = s.categories.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}

// Create validates and inserts a category, returning the stored record.
func (s *CategoryService) Create(ctx context.Context, category Category) (*Category, error) {
	if s.categories == nil {
		return nil, ErrStorageUnavailable
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	id, err := s.categories.Insert(ctx, categoryToStorage(category))
	if err != nil {
		return nil, err
	}

	row, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	created := categoryFromStorage(row)
	return &created, nil
}

// Update replaces the category's fields. A nil result with a nil error means
// no category with that id exists.
func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, category Category) (*Category, error) {
	if s.categories == nil {
		return nil, ErrStorageUnavailable
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	matched, err := s.categories.Replace(ctx, id, categoryToStorage(category))
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, nil
	}

	row, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	updated := categoryFromStorage(row)
	return &updated, nil
}

// Delete removes the category, reporting whether it existed.
func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if s.categories == nil {
		return false, ErrStorageUnavailable
	}
	return s.categories.Delete(ctx, id)
}
