package service

import (
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

// Category represents a category in the service layer.
type Category struct {
	ID        primitive.ObjectID
	Name      string
	Icon      string
	Color     string
	IsCustom  bool
	UpdatedAt *time.Time
}

// Validate checks the category against its schema constraints.
func (c Category) Validate() error {
	if n := utf8.RuneCountInString(c.Name); n < 1 || n > 50 {
		return ErrInvalidName
	}
	return nil
}

func categoryToStorage(c Category) *mongoconfig.CategoryWrite {
	return &mongoconfig.CategoryWrite{
		Name:     c.Name,
		Icon:     c.Icon,
		Color:    c.Color,
		IsCustom: c.IsCustom,
	}
}

func categoryFromStorage(row *mongoconfig.Category) Category {
	return Category{
		ID:        row.ID,
		Name:      row.Name,
		Icon:      row.Icon,
		Color:     row.Color,
		IsCustom:  row.IsCustom,
		UpdatedAt: row.UpdatedAt,
	}
}
