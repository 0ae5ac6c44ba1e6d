package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
)

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   Category
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	Create(ctx context.Context, category service.Category) (*service.Category, error)
}

// CreateCategoryHandler handles POST /api/categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/api/categories",
		Summary:     "Create category",
		Description: "Creates a new category and returns the stored record.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createCategoryMs")
	}
	created, err := h.CategoryService.Create(ctx, bodyToService(input.Body))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to create category", err)
	}

	if logData != nil {
		logData.AddData("categoryID", created.ID.Hex())
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   categoryFromService(*created),
	}, nil
}
