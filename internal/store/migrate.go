package store

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/zeusync/gnr/internal/core/observability/log"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending schema migration and returns the resulting
// schema version.
func (s *Store) Migrate() (uint, error) {
	m, err := s.migrator()
	if err != nil {
		return 0, err
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migrate store: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}

	s.logger.Info("store migrated", log.Int("version", int(version)))
	return version, nil
}

// Version reports the applied schema version, 0 for an empty database.
func (s *Store) Version() (uint, error) {
	m, err := s.migrator()
	if err != nil {
		return 0, err
	}
	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return version, err
}

// migrator is never closed: closing it would close the shared *sql.DB.
func (s *Store) migrator() (*migrate.Migrate, error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("prepare migrations: %w", err)
	}
	return migrate.NewWithInstance("iofs", src, "sqlite", driver)
}
