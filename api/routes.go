package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/handlers/v1/expense"
	"github.com/carson-networks/expense-server/internal/handlers/v1/report"
	"github.com/carson-networks/expense-server/internal/handlers/v1/status"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

type Rest struct {
	Logger        *logrus.Logger
	Port          string
	Service       *service.Service
	Storage       *storage.Storage
	AllowedOrigin string
}

// Handler builds the full route table: the plain status probe plus the huma
// operations under /v1, all behind the CORS headers.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Expense Tracker API", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	expense.NewAddExpenseHandler(r.Service.Expense).Register(api)
	report.NewSummaryHandler(r.Service.Report).Register(api)
	report.NewTrendHandler(r.Service.Report).Register(api)
	report.NewPredictionHandler(r.Service.Report).Register(api)

	return withCORS(r.AllowedOrigin, mux)
}

func (r *Rest) Server() *http.Server {
	return &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}
}
