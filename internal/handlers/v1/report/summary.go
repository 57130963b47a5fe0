package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// SummaryInput is the Huma input for the summary view.
type SummaryInput struct {
	FilterParams
}

// SummaryResponse is the response body for the summary view. Amounts are
// decimal strings.
type SummaryResponse struct {
	TotalSpent      string            `json:"total_spent" doc:"Sum of all amounts"`
	TotalByCategory map[string]string `json:"total_by_category" doc:"Sum of amounts per category"`
	DailyAverage    string            `json:"daily_avg" doc:"Total divided by the number of days with expenses"`
	RecordsCount    int               `json:"records_count" doc:"Number of expenses included"`
}

// SummaryOutput is the Huma output for the summary view.
type SummaryOutput struct {
	Body SummaryResponse
}

// SummaryHandler handles GET /v1/summary.
type SummaryHandler struct {
	ReportService reporter
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc reporter) *SummaryHandler {
	return &SummaryHandler{ReportService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Expense summary",
		Description: "Totals overall and per category, with the average spend per active day.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	stopTimer := startTiming(ctx, "summaryMs")
	summary, err := h.ReportService.Summary(ctx, input.filter())
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
	}

	byCategory := make(map[string]string, len(summary.TotalByCategory))
	for category, amount := range summary.TotalByCategory {
		byCategory[category] = amount.String()
	}

	return &SummaryOutput{
		Body: SummaryResponse{
			TotalSpent:      summary.TotalSpent.String(),
			TotalByCategory: byCategory,
			DailyAverage:    summary.DailyAverage.String(),
			RecordsCount:    summary.RecordsCount,
		},
	}, nil
}
