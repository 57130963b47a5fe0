package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations brings the schema up to date. It uses its own connection
// because closing the migrate instance closes the underlying database.
func RunMigrations(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("postgres.WithInstance: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("iofs.New: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("migrate.NewWithInstance: %w", err)
	}
	defer m.Close()

	preMigrationVersion, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		preMigrationVersion = 0
	} else if err != nil {
		return fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("m.Up: %w", err)
	}

	postMigrationVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")

	return nil
}
