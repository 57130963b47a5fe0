package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

func newTestDelegator(t *testing.T, store *storage.Storage, workers int) *OperatorDelegator {
	t.Helper()
	logger, _ := test.NewNullLogger()
	d := NewOperatorDelegator(store, workers, logger)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_CreateExpense(t *testing.T) {
	store := storage.NewMemoryStorage()
	d := newTestDelegator(t, store, 2)

	action := &actions.CreateExpense{Expense: expense.ExpenseCreate{
		UserID:   "u1",
		Date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Category: "Food",
		Amount:   decimal.RequireFromString("10"),
	}}

	err := d.Process(context.Background(), action)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, action.ID)

	rows, err := store.Expenses.QueryByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, action.ID, rows[0].ID)
}

func TestProcess_PropagatesActionError(t *testing.T) {
	mockTable := expense.NewMockIExpenseTable(t)
	mockTable.On("Insert", mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("connection refused"))
	d := newTestDelegator(t, &storage.Storage{Expenses: mockTable}, 1)

	action := &actions.CreateExpense{}
	err := d.Process(context.Background(), action)

	assert.EqualError(t, err, "connection refused")
	assert.Equal(t, uuid.Nil, action.ID)
}

func TestProcess_ConcurrentCallers(t *testing.T) {
	store := storage.NewMemoryStorage()
	d := newTestDelegator(t, store, 4)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Process(context.Background(), &actions.CreateExpense{Expense: expense.ExpenseCreate{
				UserID: "u1",
				Date:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				Amount: decimal.NewFromInt(1),
			}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rows, err := store.Expenses.QueryByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 40)
}

func TestProcess_CancelledContext(t *testing.T) {
	d := newTestDelegator(t, storage.NewMemoryStorage(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &actions.CreateExpense{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_AfterStop(t *testing.T) {
	logger, _ := test.NewNullLogger()
	d := NewOperatorDelegator(storage.NewMemoryStorage(), 1, logger)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), &actions.CreateExpense{})
	assert.ErrorIs(t, err, ErrStopped)
}
