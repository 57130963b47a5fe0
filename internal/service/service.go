package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Expense *ExpenseService
	Report  *ReportService
}

// NewService creates a new Service. Reads go straight to store; writes are
// handed to op.
func NewService(store *storage.Storage, op actionProcessor, logger *logrus.Logger) *Service {
	return &Service{
		Expense: NewExpenseService(op, logger),
		Report:  NewReportService(store, logger),
	}
}
