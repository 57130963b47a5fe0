package expense

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertExpense(t *testing.T, table *MemoryTable, userID string, date time.Time, amount string) uuid.UUID {
	t.Helper()
	id, err := table.Insert(context.Background(), &ExpenseCreate{
		UserID:   userID,
		Date:     date,
		Category: "Food",
		Amount:   decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return id
}

func TestMemoryTable_InsertAssignsIDs(t *testing.T) {
	table := NewMemoryTable()
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	first := insertExpense(t, table, "u1", day, "10")
	second := insertExpense(t, table, "u1", day, "20")

	assert.NotEqual(t, uuid.Nil, first)
	assert.NotEqual(t, first, second)
}

func TestMemoryTable_QueryByUser_ExactMatch(t *testing.T) {
	table := NewMemoryTable()
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	insertExpense(t, table, "u1", day, "10")
	insertExpense(t, table, "U1", day, "20")
	insertExpense(t, table, "", day, "30")

	rows, err := table.QueryByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("10")))

	rows, err = table.QueryByUser(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1, "empty user id only matches records with an empty user id")
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("30")))
}

func TestMemoryTable_QueryByUser_Since(t *testing.T) {
	table := NewMemoryTable()
	insertExpense(t, table, "u1", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "1")
	insertExpense(t, table, "u1", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "2")
	insertExpense(t, table, "u1", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "3")

	since := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	rows, err := table.QueryByUser(context.Background(), "u1", &since)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "lower bound is inclusive")
}

func TestMemoryTable_ReturnsCopies(t *testing.T) {
	table := NewMemoryTable()
	insertExpense(t, table, "u1", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "10")

	rows, err := table.QueryByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	rows[0].Category = "Changed"

	rows, err = table.QueryByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, "Food", rows[0].Category)
}

func TestMemoryTable_ConcurrentInserts(t *testing.T) {
	table := NewMemoryTable()
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := table.Insert(context.Background(), &ExpenseCreate{UserID: "u1", Date: day, Amount: decimal.NewFromInt(1)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rows, err := table.QueryByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 50)
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, 3, 4, 23, 59, 0, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), DateOnly(in))
}
