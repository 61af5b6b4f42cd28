// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/internal/utils"
	"github.com/MKhiriev/go-auth-panel/models"
	"github.com/jackc/pgerrcode"
)

var userColumns = []string{"id", "username", "password", "created_at", "updated_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type idGenerator interface {
	Generate() string
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository]
// over the auth_users table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    idGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger. Ids of new rows are UUIDv7 strings.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// FindUsers returns all rows matching filter ordered by username.
func (r *userRepository) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return r.selectUsers(ctx, filter, 0)
}

// FindUser fetches at most two rows so a duplicate match can be told apart
// from a unique one.
func (r *userRepository) FindUser(ctx context.Context, filter models.UserFilter) (models.User, error) {
	log := logger.FromContext(ctx)

	users, err := r.selectUsers(ctx, filter, 2)
	if err != nil {
		return models.User{}, err
	}

	switch len(users) {
	case 0:
		return models.User{}, ErrNoUserWasFound
	case 1:
		return users[0], nil
	default:
		log.Warn().Str("func", "*userRepository.FindUser").Str("username", filter.Username).Msg("filter matched several users")
		return models.User{}, ErrMultipleUsersFound
	}
}

// CreateUser persists a new user record and returns the row as stored,
// including the database-assigned timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" {
		user.ID = r.ids.Generate()
	}

	query, args, err := psql.Insert(models.User{}.TableName()).
		Columns("id", "username", "password").
		Values(user.ID, user.Username, user.Password).
		Suffix("RETURNING id, username, password, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var created models.User
	if err := row.Scan(&created.ID, &created.Username, &created.Password, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, classifyError(err)
	}

	return created, nil
}

// UpdateUser sets the non-nil fields of update and updated_at on the row
// with id. A zero update.UpdatedAt is replaced with the current time.
func (r *userRepository) UpdateUser(ctx context.Context, id string, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	updatedAt := update.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	builder := psql.Update(models.User{}.TableName()).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id})
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Password != nil {
		builder = builder.Set("password", *update.Password)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("id", id).Msg("error updating user")
		return classifyError(err)
	}

	return expectAffected(result.RowsAffected())
}

// DeleteUser removes the row with id.
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("id", id).Msg("error deleting user")
		return classifyError(err)
	}

	return expectAffected(result.RowsAffected())
}

func (r *userRepository) selectUsers(ctx context.Context, filter models.UserFilter, limit uint64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("username ASC")
	if eq := filterToEq(filter); len(eq) > 0 {
		builder = builder.Where(eq)
	}
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.selectUsers").Msg("error querying users")
		return nil, fmt.Errorf("unexpected DB error: %w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.selectUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func filterToEq(filter models.UserFilter) sq.Eq {
	eq := sq.Eq{}
	if filter.ID != "" {
		eq["id"] = filter.ID
	}
	if filter.Username != "" {
		eq["username"] = filter.Username
	}
	if filter.Password != "" {
		eq["password"] = filter.Password
	}
	return eq
}

func classifyError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrUsernameAlreadyExists
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

func expectAffected(affected int64, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}
	return nil
}

