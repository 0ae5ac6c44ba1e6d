package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pennyledger/expense-server/internal/storage"
	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

func newCategoryService(col mongoconfig.ICategoryCollection) *CategoryService {
	return NewCategoryService(&storage.Storage{Categories: col})
}

func TestCategoryList(t *testing.T) {
	rows := []*mongoconfig.Category{
		{ID: primitive.NewObjectID(), Name: "Food", Icon: "Utensils", Color: "rose"},
		{ID: primitive.NewObjectID(), Name: "Custom", IsCustom: true},
	}

	col := new(mockCategoryCollection)
	col.On("List", mock.Anything).Return(rows, nil)

	categories, err := newCategoryService(col).List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Food", categories[0].Name)
	assert.True(t, categories[1].IsCustom)
	col.AssertNotCalled(t, "InsertMany")
}

func TestCategoryList_SeedsDefaultsWhenEmpty(t *testing.T) {
	seeded := []*mongoconfig.Category{
		{ID: primitive.NewObjectID(), Name: "Food"},
		{ID: primitive.NewObjectID(), Name: "Transport"},
	}

	col := new(mockCategoryCollection)
	col.On("List", mock.Anything).Return(([]*mongoconfig.Category)(nil), nil).Once()
	col.On("InsertMany", mock.Anything, defaultCategories).Return(nil).Once()
	col.On("List", mock.Anything).Return(seeded, nil).Once()

	categories, err := newCategoryService(col).List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	col.AssertExpectations(t)
}

func TestCategoryList_SeedLosesRaceToUniqueIndex(t *testing.T) {
	seeded := []*mongoconfig.Category{
		{ID: primitive.NewObjectID(), Name: "Food"},
		{ID: primitive.NewObjectID(), Name: "Transport"},
	}
	dupErr := mongo.BulkWriteException{
		WriteErrors: []mongo.BulkWriteError{
			{WriteError: mongo.WriteError{Code: 11000, Message: "E11000 duplicate key error"}},
		},
	}

	col := new(mockCategoryCollection)
	col.On("List", mock.Anything).Return(([]*mongoconfig.Category)(nil), nil).Once()
	col.On("InsertMany", mock.Anything, defaultCategories).Return(dupErr).Once()
	col.On("List", mock.Anything).Return(seeded, nil).Once()

	categories, err := newCategoryService(col).List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	col.AssertExpectations(t)
}

func TestCategoryList_SeedFailsOtherwise(t *testing.T) {
	col := new(mockCategoryCollection)
	col.On("List", mock.Anything).Return(([]*mongoconfig.Category)(nil), nil).Once()
	col.On("InsertMany", mock.Anything, defaultCategories).Return(errors.New("connection reset")).Once()

	_, err := newCategoryService(col).List(context.Background())
	assert.Error(t, err)
	col.AssertExpectations(t)
}

func TestCategoryList_NoStorage(t *testing.T) {
	svc := NewCategoryService(nil)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestCategoryCreate(t *testing.T) {
	id := primitive.NewObjectID()

	col := new(mockCategoryCollection)
	col.On("Insert", mock.Anything, &mongoconfig.CategoryWrite{
		Name: "Pets", Icon: "Paw", Color: "lime", IsCustom: true,
	}).Return(id, nil)
	col.On("FindByID", mock.Anything, id).Return(&mongoconfig.Category{
		ID: id, Name: "Pets", Icon: "Paw", Color: "lime", IsCustom: true,
	}, nil)

	created, err := newCategoryService(col).Create(context.Background(), Category{
		Name: "Pets", Icon: "Paw", Color: "lime", IsCustom: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, "Pets", created.Name)
	col.AssertExpectations(t)
}

func TestCategoryCreate_InvalidName(t *testing.T) {
	col := new(mockCategoryCollection)
	svc := newCategoryService(col)

	_, err := svc.Create(context.Background(), Category{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidName)
	col.AssertNotCalled(t, "Insert")
}

func TestCategoryUpdate_NotFound(t *testing.T) {
	id := primitive.NewObjectID()

	col := new(mockCategoryCollection)
	col.On("Replace", mock.Anything, id, mock.Anything).Return(false, nil)

	updated, err := newCategoryService(col).Update(context.Background(), id, Category{Name: "Pets"})
	assert.NoError(t, err)
	assert.Nil(t, updated)
	col.AssertNotCalled(t, "FindByID")
}

func TestCategoryUpdate(t *testing.T) {
	id := primitive.NewObjectID()

	col := new(mockCategoryCollection)
	col.On("Replace", mock.Anything, id, mock.Anything).Return(true, nil)
	col.On("FindByID", mock.Anything, id).Return(&mongoconfig.Category{ID: id, Name: "Pets"}, nil)

	updated, err := newCategoryService(col).Update(context.Background(), id, Category{Name: "Pets"})
	assert.NoError(t, err)
	assert.Equal(t, "Pets", updated.Name)
	col.AssertExpectations(t)
}

func TestCategoryDelete(t *testing.T) {
	id := primitive.NewObjectID()

	col := new(mockCategoryCollection)
	col.On("Delete", mock.Anything, id).Return(true, nil)

	deleted, err := newCategoryService(col).Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, deleted)
}

func TestCategoryDelete_StorageError(t *testing.T) {
	id := primitive.NewObjectID()

	col := new(mockCategoryCollection)
	col.On("Delete", mock.Anything, id).Return(false, errors.New("connection reset"))

	_, err := newCategoryService(col).Delete(context.Background(), id)
	assert.Error(t, err)
}
