package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	ID string `path:"id" doc:"Category id"`
}

// DeleteCategoryResponse is the response body for deleting a category.
type DeleteCategoryResponse struct {
	Status string `json:"status" doc:"Deletion status"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Body DeleteCategoryResponse
}

// categoryDeleter is the interface for deleting categories.
type categoryDeleter interface {
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// DeleteCategoryHandler handles DELETE /api/categories/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/api/categories/{id}",
		Summary:     "Delete category",
		Description: "Removes the category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return nil, httperr.InvalidID()
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteCategoryMs")
	}
	deleted, err := h.CategoryService.Delete(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to delete category", err)
	}
	if !deleted {
		return nil, huma.NewError(http.StatusNotFound, "category not found")
	}

	return &DeleteCategoryOutput{Body: DeleteCategoryResponse{Status: "deleted"}}, nil
}
