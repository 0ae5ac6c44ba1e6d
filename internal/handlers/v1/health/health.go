package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/logging"
)

// HealthResponse reports the backend and database state.
type HealthResponse struct {
	Backend  string `json:"backend" doc:"Always ok when the server is responding"`
	Database string `json:"database" doc:"connected or unavailable"`
}

// HealthOutput is the Huma output for the health check.
type HealthOutput struct {
	Body HealthResponse
}

// pinger is the interface for probing the database connection.
type pinger interface {
	Ping(ctx context.Context) error
}

// Handler handles GET /api/health.
type Handler struct {
	Store pinger
}

// NewHandler creates a new health Handler. A nil store reports the
// database as unavailable.
func NewHandler(store pinger) *Handler {
	return &Handler{Store: store}
}

// Register registers the health endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Description: "Reports backend liveness and database connectivity.",
		Tags:        []string{"Health"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	logData := logging.GetLogData(ctx)

	database := "unavailable"
	if h.Store != nil {
		var stopTimer func()
		if logData != nil {
			stopTimer = logData.AddTiming("pingMs")
		}
		err := h.Store.Ping(ctx)
		if stopTimer != nil {
			stopTimer()
		}
		if err == nil {
			database = "connected"
		}
	}

	return &HealthOutput{Body: HealthResponse{
		Backend:  "ok",
		Database: database,
	}}, nil
}
