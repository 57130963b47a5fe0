package expense

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
)

var _ IExpenseTable = (*MemoryTable)(nil)

// MemoryTable keeps expenses in process memory. It backs local runs without
// Postgres and the service tests.
type MemoryTable struct {
	mu       sync.RWMutex
	expenses []Expense
	now      func() time.Time
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{now: time.Now}
}

func (m *MemoryTable) Insert(_ context.Context, create *ExpenseCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses = append(m.expenses, Expense{
		ID:            id,
		UserID:        create.UserID,
		Date:          DateOnly(create.Date),
		Category:      create.Category,
		Amount:        create.Amount,
		PaymentMethod: create.PaymentMethod,
		Notes:         create.Notes,
		CreatedAt:     m.now().UTC(),
	})
	return id, nil
}

func (m *MemoryTable) QueryByUser(_ context.Context, userID string, since *time.Time) ([]*Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*Expense
	for i := range m.expenses {
		e := m.expenses[i]
		if e.UserID != userID {
			continue
		}
		if since != nil && e.Date.Before(DateOnly(*since)) {
			continue
		}
		result = append(result, &e)
	}
	return result, nil
}
