package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// Storage is the record store. DB is nil for the in-memory backend.
type Storage struct {
	DB       *sql.DB
	Expenses expense.IExpenseTable
}

// NewStorage opens the backend selected in env. For Postgres the schema is
// migrated before the pool is handed out.
func NewStorage(env *config.Config) (*Storage, error) {
	if env.StoreBackend == config.StoreBackendMemory {
		return NewMemoryStorage(), nil
	}

	connStr := env.PostgresDSN()
	if err := RunMigrations(connStr); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return &Storage{
		DB:       db,
		Expenses: expense.NewTable(bob.NewDB(db)),
	}, nil
}

func NewMemoryStorage() *Storage {
	return &Storage{Expenses: expense.NewMemoryTable()}
}

// HealthCheck reports whether the backing database is reachable.
func (s *Storage) HealthCheck(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
