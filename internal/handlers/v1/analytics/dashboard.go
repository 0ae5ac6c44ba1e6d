package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
)

// DashboardInput is the Huma input for the dashboard summary.
type DashboardInput struct {
	Period string `query:"period" enum:"day,week,month,year" default:"month" doc:"Rollup window anchored at now"`
}

// DashboardResponse is the period summary shown on the dashboard.
type DashboardResponse struct {
	Period     string           `json:"period" doc:"Rollup window"`
	TotalSpent float64          `json:"total_spent" doc:"Total spend in the window"`
	Recent     []RecentExpense  `json:"recent" doc:"Ten most recent expenses"`
	Breakdown  []BreakdownEntry `json:"breakdown" doc:"Per-category spend in the window"`
}

// DashboardOutput is the Huma output for the dashboard summary.
type DashboardOutput struct {
	Body DashboardResponse
}

// dashboardComputer is the interface for computing the dashboard summary.
type dashboardComputer interface {
	Dashboard(ctx context.Context, period string) (*service.Dashboard, error)
}

// DashboardHandler handles GET /api/dashboard.
type DashboardHandler struct {
	AnalyticsService dashboardComputer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc dashboardComputer) *DashboardHandler {
	return &DashboardHandler{AnalyticsService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *DashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/api/dashboard",
		Summary:     "Dashboard summary",
		Description: "Returns the period's total spend, recent expenses, and category breakdown.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *DashboardHandler) handle(ctx context.Context, input *DashboardInput) (*DashboardOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getDashboardMs")
	}
	dashboard, err := h.AnalyticsService.Dashboard(ctx, input.Period)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to compute dashboard", err)
	}

	recent := make([]RecentExpense, 0, len(dashboard.Recent))
	for _, expense := range dashboard.Recent {
		recent = append(recent, recentFromService(expense))
	}

	return &DashboardOutput{Body: DashboardResponse{
		Period:     dashboard.Period,
		TotalSpent: dashboard.TotalSpent,
		Recent:     recent,
		Breakdown:  breakdownFromService(dashboard.Breakdown),
	}}, nil
}
