package expense

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Expense represents an expense record.
type Expense struct {
	ID            uuid.UUID
	UserID        string
	Date          time.Time
	Category      string
	Amount        decimal.Decimal
	PaymentMethod string
	Notes         string
	CreatedAt     time.Time
}

// ExpenseCreate is the input for creating a new expense. Fields are expected to
// be validated and normalized already.
type ExpenseCreate struct {
	UserID        string
	Date          time.Time
	Category      string
	Amount        decimal.Decimal
	PaymentMethod string
	Notes         string
}

// IExpenseTable defines the interface for expense storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IExpenseTable --output mock_IExpenseTable.go
type IExpenseTable interface {
	Insert(ctx context.Context, create *ExpenseCreate) (uuid.UUID, error)
	// QueryByUser returns every expense owned by userID, restricted to dates on
	// or after since when since is non-nil. No ordering is guaranteed.
	QueryByUser(ctx context.Context, userID string, since *time.Time) ([]*Expense, error)
}

// DateOnly truncates t to its calendar date at UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
