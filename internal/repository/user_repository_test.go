package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name, email, password_hash)")).
		WithArgs("John", "john@x.com", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("6f1c", "John", "john@x.com", "$2a$10$hash", now, now))

	user, err := repo.Create(context.Background(), "John", "john@x.com", "$2a$10$hash")
	require.NoError(t, err)
	assert.Equal(t, "6f1c", user.ID)
	assert.Equal(t, "John", user.Name)
	assert.Equal(t, now, user.CreatedAt)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), "John", "john@x.com", "hash")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("john@x.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("6f1c", "John", "john@x.com", "hash", now, now))

	user, err := repo.FindByEmail(context.Background(), "john@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_FindByID_DriverError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindByID(context.Background(), "6f1c")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}
