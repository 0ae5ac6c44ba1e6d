package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
)

// UpdateCategoryInput is the Huma input for replacing a category.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category id"`
	Body CategoryBody
}

// UpdateCategoryOutput is the Huma output for replacing a category.
type UpdateCategoryOutput struct {
	Body Category
}

// categoryUpdater is the interface for replacing categories.
type categoryUpdater interface {
	Update(ctx context.Context, id primitive.ObjectID, category service.Category) (*service.Category, error)
}

// UpdateCategoryHandler handles PUT /api/categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/api/categories/{id}",
		Summary:     "Replace category",
		Description: "Replaces the category's fields and returns the stored record.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return nil, httperr.InvalidID()
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateCategoryMs")
	}
	updated, err := h.CategoryService.Update(ctx, id, bodyToService(input.Body))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to update category", err)
	}
	if updated == nil {
		return nil, huma.NewError(http.StatusNotFound, "category not found")
	}

	return &UpdateCategoryOutput{Body: categoryFromService(*updated)}, nil
}
