// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, driver: driverPostgres, logger: l},
		logger: l,
		ids:    fixedID("0190a1b2-0000-7000-8000-000000000001"),
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userColumns)
	for _, u := range users {
		rows.AddRow(u.ID, u.Username, u.Password, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

var (
	created = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	alice   = models.User{ID: "id-alice", Username: "alice", Password: "enc-a", CreatedAt: created, UpdatedAt: created}
	bob     = models.User{ID: "id-bob", Username: "bob", Password: "enc-b", CreatedAt: created, UpdatedAt: created}
)

// ── FindUsers ─────────────────────────────────────────────────────────────────

func TestFindUsers_AllOrderedByUsername(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`^SELECT id, username, password, created_at, updated_at FROM auth_users ORDER BY username ASC$`).
		WillReturnRows(userRows(alice, bob))

	users, err := repo.FindUsers(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	assert.Equal(t, []models.User{alice, bob}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUsers_EmptyResultIsEmptySlice(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM auth_users WHERE username = \$1 ORDER BY username ASC`).
		WithArgs("nobody").
		WillReturnRows(userRows())

	users, err := repo.FindUsers(context.Background(), models.UserFilter{Username: "nobody"})
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestFindUsers_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM auth_users`).WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUsers(context.Background(), models.UserFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindUsers_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userColumns).AddRow("id", "alice", "enc", "not-a-time", created)
	mock.ExpectQuery(`FROM auth_users`).WillReturnRows(rows)

	_, err := repo.FindUsers(context.Background(), models.UserFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── FindUser ──────────────────────────────────────────────────────────────────

func TestFindUser(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		want    models.User
		wantErr error
	}{
		{name: "single match", rows: userRows(alice), want: alice},
		{name: "no match", rows: userRows(), wantErr: ErrNoUserWasFound},
		{name: "several matches", rows: userRows(alice, alice), wantErr: ErrMultipleUsersFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery(`FROM auth_users WHERE username = \$1 ORDER BY username ASC LIMIT 2`).
				WithArgs("alice").
				WillReturnRows(tt.rows)

			got, err := repo.FindUser(context.Background(), models.UserFilter{Username: "alice"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindUser_ByIDAndPassword(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`WHERE id = \$1 AND password = \$2`).
		WithArgs("id-alice", "enc-a").
		WillReturnRows(userRows(alice))

	got, err := repo.FindUser(context.Background(), models.UserFilter{ID: "id-alice", Password: "enc-a"})
	require.NoError(t, err)
	assert.Equal(t, alice, got)
}

// ── CreateUser ────────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	want := models.User{ID: "0190a1b2-0000-7000-8000-000000000001", Username: "carol", Password: "enc-c", CreatedAt: created, UpdatedAt: created}
	mock.ExpectQuery(`^INSERT INTO auth_users \(id,username,password\) VALUES \(\$1,\$2,\$3\) RETURNING id, username, password, created_at, updated_at$`).
		WithArgs(want.ID, "carol", "enc-c").
		WillReturnRows(userRows(want))

	got, err := repo.CreateUser(context.Background(), models.User{Username: "carol", Password: "enc-c"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_KeepsSuppliedID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO auth_users`).
		WithArgs("custom-id", "carol", "enc-c").
		WillReturnRows(userRows(models.User{ID: "custom-id", Username: "carol", Password: "enc-c"}))

	got, err := repo.CreateUser(context.Background(), models.User{ID: "custom-id", Username: "carol", Password: "enc-c"})
	require.NoError(t, err)
	assert.Equal(t, "custom-id", got.ID)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO auth_users`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestCreateUser_OtherError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO auth_users`).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

// ── UpdateUser ────────────────────────────────────────────────────────────────

func TestUpdateUser_Password(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	at := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	password := "enc-new"
	mock.ExpectExec(`^UPDATE auth_users SET updated_at = \$1, password = \$2 WHERE id = \$3$`).
		WithArgs(at, password, "id-alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUser(context.Background(), "id-alice", models.UserUpdate{Password: &password, UpdatedAt: at})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_UsernameWithDefaultTimestamp(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	username := "alicia"
	mock.ExpectExec(`^UPDATE auth_users SET updated_at = \$1, username = \$2 WHERE id = \$3$`).
		WithArgs(sqlmock.AnyArg(), username, "id-alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateUser(context.Background(), "id-alice", models.UserUpdate{Username: &username}))
}

func TestUpdateUser_Errors(t *testing.T) {
	username := "bob"
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "no row",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE auth_users`).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "username taken",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE auth_users`).WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrUsernameAlreadyExists,
		},
		{
			name: "rows affected unavailable",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE auth_users`).WillReturnResult(sqlmock.NewErrorResult(sql.ErrConnDone))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			err := repo.UpdateUser(context.Background(), "id-alice", models.UserUpdate{Username: &username})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── DeleteUser ────────────────────────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`^DELETE FROM auth_users WHERE id = \$1$`).
		WithArgs("id-bob").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteUser(context.Background(), "id-bob"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`DELETE FROM auth_users`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteUser(context.Background(), "missing"), ErrNoUserWasFound)
}

func TestDeleteUser_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`DELETE FROM auth_users`).WillReturnError(errors.New("boom"))

	err := repo.DeleteUser(context.Background(), "id-bob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(pgError(pgerrcode.UniqueViolation)))
	assert.Empty(t, postgresError(errors.New("plain")))
}
