package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct{}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body []Category
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	List(ctx context.Context) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /api/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/categories",
		Summary:     "List categories",
		Description: "Returns all categories, seeding the default set when the collection is empty.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCategoriesMs")
	}
	categories, err := h.CategoryService.List(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to list categories", err)
	}

	if logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	body := make([]Category, len(categories))
	for i, c := range categories {
		body[i] = categoryFromService(c)
	}
	return &ListCategoriesOutput{Body: body}, nil
}
