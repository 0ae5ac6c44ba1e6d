package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/pennyledger/expense-server/internal/handlers/v1/analytics"
	"github.com/pennyledger/expense-server/internal/handlers/v1/budget"
	"github.com/pennyledger/expense-server/internal/handlers/v1/category"
	"github.com/pennyledger/expense-server/internal/handlers/v1/expense"
	"github.com/pennyledger/expense-server/internal/handlers/v1/health"
	"github.com/pennyledger/expense-server/internal/handlers/v1/status"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
	"github.com/pennyledger/expense-server/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("expense-server", "1.0.0"))
	humaAPI.UseMiddleware(r.requestLogging)

	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewCreateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewUpdateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Service.Category).Register(humaAPI)

	expense.NewListExpensesHandler(r.Service.Expense).Register(humaAPI)
	expense.NewCreateExpenseHandler(r.Service.Expense).Register(humaAPI)
	expense.NewGetExpenseHandler(r.Service.Expense).Register(humaAPI)
	expense.NewUpdateExpenseHandler(r.Service.Expense).Register(humaAPI)
	expense.NewDeleteExpenseHandler(r.Service.Expense).Register(humaAPI)

	budget.NewGetBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewUpsertBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewBudgetUsageHandler(r.Service.Budget).Register(humaAPI)

	analytics.NewDashboardHandler(r.Service.Analytics).Register(humaAPI)
	analytics.NewMonthlyHandler(r.Service.Analytics).Register(humaAPI)

	health.NewHandler(r.Storage).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// requestLogging attaches a fresh LogData to every request and emits one
// structured line when the handler completes.
func (r *Rest) requestLogging(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	stopTimer := logData.AddTiming("totalMs")

	ctx = huma.WithContext(ctx, logging.NewContext(ctx.Context(), logData))
	next(ctx)

	stopTimer()
	logData.AddData("path", ctx.URL().Path)
	logData.AddData("statusCode", ctx.Status())
	logData.Log().Info("Request.complete")
}
