package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// CreateExpense inserts one validated expense. ID is set once Perform succeeds.
type CreateExpense struct {
	Expense expense.ExpenseCreate

	ID uuid.UUID
}

func (c *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Expense.Insert(ctx, &c.Expense)
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
