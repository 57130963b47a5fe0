package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
)

// IAction is a unit of write work. Perform runs inside a single storage
// transaction; returning an error rolls it back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
