package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func validInput() ExpenseInput {
	return ExpenseInput{
		Date:          strPtr("2025-09-21"),
		Category:      strPtr("  eating out "),
		Amount:        15.5,
		UserID:        strPtr("user@example.com"),
		PaymentMethod: strPtr(" credit card"),
		Notes:         strPtr("  bought burgers  "),
	}
}

func newExpenseTestService(t *testing.T) (*ExpenseService, *storage.Storage) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	store := storage.NewMemoryStorage()
	d := operator.NewOperatorDelegator(store, 1, logger)
	d.Start()
	t.Cleanup(d.Stop)
	return NewExpenseService(d, logger), store
}

// -- AddExpense tests --

func TestAddExpense_Success(t *testing.T) {
	svc, store := newExpenseTestService(t)

	id, err := svc.AddExpense(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	rows, err := store.Expenses.QueryByUser(context.Background(), "user@example.com", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, id, row.ID)
	assert.Equal(t, time.Date(2025, 9, 21, 0, 0, 0, 0, time.UTC), row.Date)
	assert.Equal(t, "Eating Out", row.Category)
	assert.True(t, row.Amount.Equal(decimal.RequireFromString("15.5")))
	assert.Equal(t, "Credit Card", row.PaymentMethod)
	assert.Equal(t, "bought burgers", row.Notes)
}

func TestAddExpense_OptionalFieldsDefaultEmpty(t *testing.T) {
	svc, store := newExpenseTestService(t)

	input := validInput()
	input.PaymentMethod = nil
	input.Notes = nil

	_, err := svc.AddExpense(context.Background(), input)
	require.NoError(t, err)

	rows, err := store.Expenses.QueryByUser(context.Background(), "user@example.com", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].PaymentMethod)
	assert.Equal(t, "", rows[0].Notes)
}

func TestAddExpense_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*ExpenseInput)
	}{
		{"date", func(in *ExpenseInput) { in.Date = nil }},
		{"category", func(in *ExpenseInput) { in.Category = nil }},
		{"amount", func(in *ExpenseInput) { in.Amount = nil }},
		{"user id", func(in *ExpenseInput) { in.UserID = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := new(mockActionProcessor)
			logger, _ := test.NewNullLogger()
			svc := NewExpenseService(op, logger)

			input := validInput()
			tt.apply(&input)
			id, err := svc.AddExpense(context.Background(), input)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "missing required fields", validationErr.Message)
			assert.Equal(t, uuid.Nil, id)
			op.AssertNotCalled(t, "Process")
		})
	}
}

func TestAddExpense_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*ExpenseInput)
	}{
		{"bad date", func(in *ExpenseInput) { in.Date = strPtr("21/09/2025") }},
		{"empty date", func(in *ExpenseInput) { in.Date = strPtr("") }},
		{"non-numeric amount", func(in *ExpenseInput) { in.Amount = "fifteen" }},
		{"boolean amount", func(in *ExpenseInput) { in.Amount = true }},
		{"negative amount", func(in *ExpenseInput) { in.Amount = -3.0 }},
		{"blank category", func(in *ExpenseInput) { in.Category = strPtr("   ") }},
		{"empty user id", func(in *ExpenseInput) { in.UserID = strPtr("") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := new(mockActionProcessor)
			logger, _ := test.NewNullLogger()
			svc := NewExpenseService(op, logger)

			input := validInput()
			tt.apply(&input)
			_, err := svc.AddExpense(context.Background(), input)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			op.AssertNotCalled(t, "Process")
		})
	}
}

func TestAddExpense_StoreError(t *testing.T) {
	op := new(mockActionProcessor)
	op.On("Process", mock.Anything, mock.AnythingOfType("*actions.CreateExpense")).
		Return(errors.New("connection refused"))
	logger, _ := test.NewNullLogger()
	svc := NewExpenseService(op, logger)

	id, err := svc.AddExpense(context.Background(), validInput())

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.EqualError(t, storeErr.Err, "connection refused")
	assert.Equal(t, uuid.Nil, id)
	op.AssertExpectations(t)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  any
		want string
	}{
		{15.5, "15.5"},
		{"  12.34 ", "12.34"},
		{"1e3", "1000"},
		{json.Number("0.10"), "0.1"},
		{42, "42"},
		{int64(7), "7"},
		{decimal.RequireFromString("3.333"), "3.333"},
		{0, "0"},
	}
	for _, tt := range tests {
		amount, err := parseAmount(tt.raw)
		require.NoError(t, err, "%v", tt.raw)
		assert.True(t, amount.Equal(decimal.RequireFromString(tt.want)), "%v: got %s", tt.raw, amount)
	}
}

// -- End-to-end through ingestion and reports --

func TestAddExpenseThenSummary(t *testing.T) {
	logger, _ := test.NewNullLogger()
	store := storage.NewMemoryStorage()
	d := operator.NewOperatorDelegator(store, 2, logger)
	d.Start()
	t.Cleanup(d.Stop)
	svc := NewService(store, d, logger)

	_, err := svc.Expense.AddExpense(context.Background(), ExpenseInput{
		Date: strPtr("2025-01-01"), Category: strPtr("food"), Amount: 10, UserID: strPtr("u1"),
	})
	require.NoError(t, err)
	_, err = svc.Expense.AddExpense(context.Background(), ExpenseInput{
		Date: strPtr("2025-01-02"), Category: strPtr("Food"), Amount: 20, UserID: strPtr("u1"),
	})
	require.NoError(t, err)

	summary, err := svc.Report.Summary(context.Background(), Filter{UserID: "u1", WindowDays: 0})
	require.NoError(t, err)

	assert.True(t, summary.TotalSpent.Equal(decimal.NewFromInt(30)))
	require.Len(t, summary.TotalByCategory, 1)
	assert.True(t, summary.TotalByCategory["Food"].Equal(decimal.NewFromInt(30)))
	assert.True(t, summary.DailyAverage.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 2, summary.RecordsCount)

	var rows []*expense.Expense
	rows, err = store.Expenses.QueryByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
