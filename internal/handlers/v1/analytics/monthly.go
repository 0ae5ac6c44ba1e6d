package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/handlers/v1/httperr"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
)

// MonthlyInput is the Huma input for the monthly rollup.
type MonthlyInput struct {
	Year int `query:"year" minimum:"0" doc:"Calendar year, defaults to the current year"`
}

// MonthTotal is one row of the twelve-month spend table.
type MonthTotal struct {
	Month string  `json:"month" doc:"Month in YYYY-MM format"`
	Total float64 `json:"total" doc:"Total spend in the month"`
}

// MonthlyOutput is the Huma output for the monthly rollup: an ordered
// sequence of twelve rows, one per calendar month.
type MonthlyOutput struct {
	Body []MonthTotal
}

// monthlyComputer is the interface for computing the monthly rollup.
type monthlyComputer interface {
	Monthly(ctx context.Context, year int) ([]service.MonthTotal, error)
}

// MonthlyHandler handles GET /api/analytics/monthly.
type MonthlyHandler struct {
	AnalyticsService monthlyComputer
	Now              func() time.Time
}

// NewMonthlyHandler creates a new MonthlyHandler.
func NewMonthlyHandler(svc monthlyComputer) *MonthlyHandler {
	return &MonthlyHandler{AnalyticsService: svc, Now: time.Now}
}

// Register registers the monthly analytics endpoint with the Huma API.
func (h *MonthlyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-monthly-analytics",
		Method:      http.MethodGet,
		Path:        "/api/analytics/monthly",
		Summary:     "Monthly analytics",
		Description: "Returns the year's spend per month, with zeroes for empty months.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *MonthlyHandler) handle(ctx context.Context, input *MonthlyInput) (*MonthlyOutput, error) {
	logData := logging.GetLogData(ctx)

	year := input.Year
	if year == 0 {
		year = h.Now().UTC().Year()
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getMonthlyAnalyticsMs")
	}
	totals, err := h.AnalyticsService.Monthly(ctx, year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to compute monthly analytics", err)
	}

	months := make([]MonthTotal, 0, len(totals))
	for _, total := range totals {
		months = append(months, MonthTotal{Month: total.Month, Total: total.Total})
	}

	return &MonthlyOutput{Body: months}, nil
}
