package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/expense-server/internal/logging"
)

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handler struct {
	Checker healthChecker
}

func NewHandler(checker healthChecker) Handler {
	return Handler{Checker: checker}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	endTimer := logData.AddTiming("healthCheck")
	err := h.Checker.HealthCheck(req.Context())
	endTimer()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return fmt.Errorf("status: store unreachable: %w", err)
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
