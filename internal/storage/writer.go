package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// Writer scopes writes to one transaction. Without a database (in-memory
// backend) it writes straight to the shared table and Commit/Rollback are no-ops.
type Writer struct {
	tx      *bob.Tx
	Expense expense.IExpenseTable
}

// Write opens a Writer for a single unit of work.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if s.DB == nil {
		return &Writer{Expense: s.Expenses}, nil
	}

	tx, err := bob.NewDB(s.DB).BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &Writer{
		tx:      &tx,
		Expense: expense.NewTable(tx),
	}, nil
}

func (w *Writer) Commit() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Rollback(context.Background())
}
