package expense

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const tableName = "expenses"

var selectColumns = []any{
	psql.Quote("id"),
	psql.Quote("user_id"),
	psql.Quote("date"),
	psql.Quote("category"),
	psql.Quote("amount"),
	psql.Quote("payment_method"),
	psql.Quote("notes"),
	psql.Quote("created_at"),
}

type expenseRow struct {
	ID            uuid.UUID       `db:"id"`
	UserID        string          `db:"user_id"`
	Date          time.Time       `db:"date"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	Notes         string          `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
}

var _ IExpenseTable = (*Table)(nil)

// Table provides access to the expenses table through any bob executor, so the
// same code runs against the pool or inside a transaction.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// Insert creates a new expense and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *ExpenseCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into(psql.Quote(tableName), "user_id", "date", "category", "amount", "payment_method", "notes"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Date.Format(time.DateOnly)),
			psql.Arg(create.Category),
			psql.Arg(create.Amount),
			psql.Arg(create.PaymentMethod),
			psql.Arg(create.Notes),
		),
		im.Returning(psql.Quote("id")),
	)

	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// QueryByUser returns the user's expenses, optionally from since onwards.
func (t *Table) QueryByUser(ctx context.Context, userID string, since *time.Time) ([]*Expense, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(selectColumns...),
		sm.From(psql.Quote(tableName)),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if since != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").GTE(psql.Arg(since.Format(time.DateOnly)))))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[expenseRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*Expense, len(rows))
	for i, row := range rows {
		result[i] = rowToExpense(row)
	}
	return result, nil
}

func rowToExpense(row expenseRow) *Expense {
	return &Expense{
		ID:            row.ID,
		UserID:        row.UserID,
		Date:          DateOnly(row.Date),
		Category:      row.Category,
		Amount:        row.Amount,
		PaymentMethod: row.PaymentMethod,
		Notes:         row.Notes,
		CreatedAt:     row.CreatedAt,
	}
}
