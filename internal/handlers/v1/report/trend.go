package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// TrendInput is the Huma input for the trend view.
type TrendInput struct {
	FilterParams
}

// TrendResponse is the response body for the trend view. amounts[i] is the
// total for dates[i].
type TrendResponse struct {
	Dates        []string `json:"dates" doc:"Ascending YYYY-MM-DD dates that have expenses"`
	Amounts      []string `json:"amounts" doc:"Decimal total per date"`
	RecordsCount int      `json:"records_count" doc:"Number of expenses included"`
}

// TrendOutput is the Huma output for the trend view.
type TrendOutput struct {
	Body TrendResponse
}

// TrendHandler handles GET /v1/trend.
type TrendHandler struct {
	ReportService reporter
}

// NewTrendHandler creates a new TrendHandler.
func NewTrendHandler(svc reporter) *TrendHandler {
	return &TrendHandler{ReportService: svc}
}

// Register registers the trend endpoint with the Huma API.
func (h *TrendHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-trend",
		Method:      http.MethodGet,
		Path:        "/v1/trend",
		Summary:     "Daily spending trend",
		Description: "Per-day totals in ascending date order.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *TrendHandler) handle(ctx context.Context, input *TrendInput) (*TrendOutput, error) {
	stopTimer := startTiming(ctx, "trendMs")
	trend, err := h.ReportService.Trend(ctx, input.filter())
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute trend", err)
	}

	amounts := make([]string, len(trend.Amounts))
	for i, amount := range trend.Amounts {
		amounts[i] = amount.String()
	}

	return &TrendOutput{
		Body: TrendResponse{
			Dates:        trend.Dates,
			Amounts:      amounts,
			RecordsCount: trend.RecordsCount,
		},
	}, nil
}
