// Package report serves the read-only summary, trend and prediction views over
// a user's recorded expenses.
package report

import (
	"context"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// FilterParams are the query parameters shared by the summary and trend views.
// days is kept as a string so unparseable values disable the window instead of
// failing the request.
type FilterParams struct {
	UserID string `query:"user_id" doc:"Only include this user's expenses"`
	Days   string `query:"days" doc:"Restrict to the last 7 or 30 days; any other value means all time"`
}

func (p FilterParams) filter() service.Filter {
	return service.Filter{
		UserID:     p.UserID,
		WindowDays: service.ParseWindowDays(p.Days),
	}
}

// reporter is the interface for the aggregate views.
type reporter interface {
	Summary(ctx context.Context, filter service.Filter) (*service.Summary, error)
	Trend(ctx context.Context, filter service.Filter) (*service.Trend, error)
	Prediction(ctx context.Context, filter service.Filter, period string) (*service.Prediction, error)
}

func startTiming(ctx context.Context, name string) func() {
	logData := logging.GetLogData(ctx)
	if logData == nil {
		return func() {}
	}
	return logData.AddTiming(name)
}
