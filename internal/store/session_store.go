// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-panel/internal/logger"
)

const kvTable = "kv"

// sessionStore is the SQLite-backed [SessionStore]. Writes are last writer
// wins.
type sessionStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionStore constructs a [SessionStore] over the kv table of db.
func NewSessionStore(db *DB, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating session store")
	return &sessionStore{
		db:     db,
		logger: logger,
	}
}

func (s *sessionStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSlotNotFound
		}
		log.Err(err).Str("func", "*sessionStore.Get").Str("key", key).Msg("error reading session slot")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sessionStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionStore.Set").Str("key", key).Msg("error writing session slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionStore.Delete").Str("key", key).Msg("error deleting session slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
