// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/migrations"
)

const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB is a *sql.DB that remembers which driver opened it.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies the embedded migrations matching the connection's driver.
func (db *DB) Migrate() error {
	switch db.driver {
	case driverPostgres:
		return migrations.MigratePostgres(db.DB)
	case driverSQLite:
		return migrations.MigrateSQLite(db.DB)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, db.driver)
	}
}
