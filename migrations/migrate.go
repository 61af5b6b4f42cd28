// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose schema migrations of both databases:
// the auth_users table in PostgreSQL and the session key/value table in the
// local SQLite file.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// MigratePostgres applies the user store migrations.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, goose.DialectPostgres, "postgres")
}

// MigrateSQLite applies the session slot migrations.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, goose.DialectSQLite3, "sqlite")
}

func migrate(db *sql.DB, dialect goose.Dialect, dir string) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
