package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/service"
)

// PredictionInput is the Huma input for the prediction view.
type PredictionInput struct {
	FilterParams
	PredictionPeriod string `query:"predictionPeriod" doc:"\"week\" projects 7 days, anything else 30; defaults to week"`
}

// PredictionResponse is the response body for the prediction view.
type PredictionResponse struct {
	PredictionPeriod string `json:"predictionPeriod" doc:"The requested period, echoed back"`
	PredictedTotal   string `json:"predicted_total" doc:"Projected decimal spend over the period"`
	RecordsCount     int    `json:"records_count" doc:"Number of expenses included"`
}

// PredictionOutput is the Huma output for the prediction view.
type PredictionOutput struct {
	Body PredictionResponse
}

// PredictionHandler handles GET /v1/prediction.
type PredictionHandler struct {
	ReportService reporter
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(svc reporter) *PredictionHandler {
	return &PredictionHandler{ReportService: svc}
}

// Register registers the prediction endpoint with the Huma API.
func (h *PredictionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-prediction",
		Method:      http.MethodGet,
		Path:        "/v1/prediction",
		Summary:     "Spending prediction",
		Description: "Projects the average daily spend over the next week or month.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *PredictionHandler) handle(ctx context.Context, input *PredictionInput) (*PredictionOutput, error) {
	period := input.PredictionPeriod
	if period == "" {
		period = service.PredictionPeriodWeek
	}

	stopTimer := startTiming(ctx, "predictionMs")
	prediction, err := h.ReportService.Prediction(ctx, input.filter(), period)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute prediction", err)
	}

	return &PredictionOutput{
		Body: PredictionResponse{
			PredictionPeriod: prediction.PredictionPeriod,
			PredictedTotal:   prediction.PredictedTotal.String(),
			RecordsCount:     prediction.RecordsCount,
		},
	}, nil
}
