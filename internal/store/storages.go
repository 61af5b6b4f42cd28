// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-panel/internal/config"
	"github.com/MKhiriev/go-auth-panel/internal/logger"
)

// Storages groups the user repository and the session slot so they can be
// passed to the service layer as one value.
type Storages struct {
	UserRepository UserRepository
	SessionStore   SessionStore

	dbs []*DB
}

// Option customises [NewStorages].
type Option func(*Storages)

// WithUserRepository supplies a ready user repository (e.g. the REST
// gateway client). PostgreSQL is then not connected.
func WithUserRepository(repo UserRepository) Option {
	return func(s *Storages) {
		s.UserRepository = repo
	}
}

// NewStorages initialises the storage layer:
//  1. Unless a repository was supplied via [WithUserRepository], connects to
//     PostgreSQL at cfg.DB.DSN and migrates the auth_users table.
//  2. Opens the SQLite session file at cfg.Session.Path, creating it if
//     needed, and migrates the kv table.
//
// Connections opened here are released by [Storages.Close].
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger, opts ...Option) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	s := &Storages{}
	for _, opt := range opts {
		opt(s)
	}

	if s.UserRepository == nil {
		if cfg.DB.DSN == "" {
			return nil, ErrNoUserStore
		}

		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		s.dbs = append(s.dbs, db)

		if err := db.Migrate(); err != nil {
			s.Close()
			return nil, fmt.Errorf("postgres migration failed: %w", err)
		}
		s.UserRepository = NewUserRepository(db, log)
	}

	sessionDB, err := NewConnectSQLite(ctx, cfg.Session, log)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	s.dbs = append(s.dbs, sessionDB)

	if err := sessionDB.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("sqlite migration failed: %w", err)
	}
	s.SessionStore = NewSessionStore(sessionDB, log)

	return s, nil
}

// Close closes every connection opened by [NewStorages].
func (s *Storages) Close() error {
	var errs []error
	for _, db := range s.dbs {
		errs = append(errs, db.Close())
	}
	s.dbs = nil
	return errors.Join(errs...)
}
