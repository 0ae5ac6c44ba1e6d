package category

import (
	"time"

	"github.com/pennyledger/expense-server/internal/service"
)

// Category is the wire representation of a category. The store-internal
// identifier is always rendered as a plain string id.
type Category struct {
	ID        string `json:"id" doc:"Category id"`
	Name      string `json:"name" doc:"Category name"`
	Icon      string `json:"icon,omitempty" doc:"Icon identifier (e.g. emoji or lucide name)"`
	Color     string `json:"color,omitempty" doc:"Hex or tailwind color key"`
	IsCustom  bool   `json:"is_custom" doc:"Whether this category was created by the user"`
	UpdatedAt string `json:"updated_at,omitempty" doc:"RFC3339 time of the last update"`
}

// CategoryBody is the request body for creating or replacing a category.
type CategoryBody struct {
	Name     string `json:"name" required:"true" minLength:"1" maxLength:"50" doc:"Category name"`
	Icon     string `json:"icon,omitempty" doc:"Icon identifier (e.g. emoji or lucide name)"`
	Color    string `json:"color,omitempty" doc:"Hex or tailwind color key"`
	IsCustom *bool  `json:"is_custom,omitempty" doc:"Whether this category was created by the user, defaults to true"`
}

func bodyToService(body CategoryBody) service.Category {
	isCustom := true
	if body.IsCustom != nil {
		isCustom = *body.IsCustom
	}
	return service.Category{
		Name:     body.Name,
		Icon:     body.Icon,
		Color:    body.Color,
		IsCustom: isCustom,
	}
}

func categoryFromService(c service.Category) Category {
	out := Category{
		ID:       c.ID.Hex(),
		Name:     c.Name,
		Icon:     c.Icon,
		Color:    c.Color,
		IsCustom: c.IsCustom,
	}
	if c.UpdatedAt != nil {
		out.UpdatedAt = c.UpdatedAt.Format(time.RFC3339)
	}
	return out
}
