package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// actionProcessor runs a write action inside its own storage transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ExpenseService handles expense ingestion.
type ExpenseService struct {
	operator actionProcessor
	logger   *logrus.Logger
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(op actionProcessor, logger *logrus.Logger) *ExpenseService {
	return &ExpenseService{operator: op, logger: logger}
}

// AddExpense validates and normalizes input, persists it and returns the new
// record's ID. Nothing is written when validation fails.
func (s *ExpenseService) AddExpense(ctx context.Context, input ExpenseInput) (uuid.UUID, error) {
	create, err := parseExpenseInput(input)
	if err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateExpense{Expense: *create}
	if err := s.operator.Process(ctx, action); err != nil {
		s.logger.WithError(err).WithField("userID", create.UserID).Error("ExpenseService.AddExpense.Process")
		return uuid.Nil, &StoreError{Op: "insert expense", Err: err}
	}

	s.logger.WithFields(logrus.Fields{
		"expenseID": action.ID.String(),
		"userID":    create.UserID,
		"category":  create.Category,
	}).Info("ExpenseService.AddExpense.Created")

	return action.ID, nil
}

func parseExpenseInput(input ExpenseInput) (*expense.ExpenseCreate, error) {
	if input.Date == nil || input.Category == nil || input.Amount == nil || input.UserID == nil {
		return nil, newValidationError(msgMissingRequiredFields)
	}

	date, err := time.Parse(time.DateOnly, *input.Date)
	if err != nil {
		return nil, newValidationError("invalid date %q: expected YYYY-MM-DD", *input.Date)
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	category := NormalizeLabel(*input.Category)
	if category == "" {
		return nil, newValidationError("category must not be empty")
	}

	if *input.UserID == "" {
		return nil, newValidationError("user id must not be empty")
	}

	create := &expense.ExpenseCreate{
		UserID:   *input.UserID,
		Date:     expense.DateOnly(date),
		Category: category,
		Amount:   amount,
	}
	if input.PaymentMethod != nil {
		create.PaymentMethod = NormalizeLabel(*input.PaymentMethod)
	}
	if input.Notes != nil {
		create.Notes = strings.TrimSpace(*input.Notes)
	}
	return create, nil
}

// parseAmount accepts JSON numbers, numeric strings and Go numeric values.
func parseAmount(raw any) (decimal.Decimal, error) {
	var (
		amount decimal.Decimal
		err    error
	)

	switch v := raw.(type) {
	case decimal.Decimal:
		amount = v
	case float64:
		amount = decimal.NewFromFloat(v)
	case float32:
		amount = decimal.NewFromFloat32(v)
	case int:
		amount = decimal.NewFromInt(int64(v))
	case int64:
		amount = decimal.NewFromInt(v)
	case int32:
		amount = decimal.NewFromInt32(v)
	case json.Number:
		amount, err = decimal.NewFromString(v.String())
	case string:
		amount, err = decimal.NewFromString(strings.TrimSpace(v))
	default:
		return decimal.Zero, newValidationError("invalid amount: unsupported type %T", raw)
	}
	if err != nil {
		return decimal.Zero, newValidationError("invalid amount %q: %v", fmt.Sprint(raw), err)
	}

	if amount.IsNegative() {
		return decimal.Zero, newValidationError("invalid amount %s: must not be negative", amount.String())
	}
	return amount, nil
}
