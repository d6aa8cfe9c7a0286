package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/pkg/entity"
)

var userColumns = []string{"id", "email", "username", "full_name", "avatar", "is_active",
	"current_streak", "longest_streak", "created_at"}

func strPtr(s string) *string { return &s }

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := entity.User{
		Email:    "runner@example.com",
		Username: "runner",
		FullName: strPtr("Road Runner"),
	}
	query := regexp.QuoteMeta(`INSERT INTO users (email, username, full_name, avatar) VALUES ($1, $2, $3, $4)`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()
		conn.ExpectQuery(query).WithArgs(user.Email, user.Username, user.FullName, user.Avatar).
			WillReturnRows(pgxmock.NewRows([]string{"id", "is_active", "current_streak", "longest_streak", "created_at"}).
				AddRow(id, true, 0, 0, now))
		u := user
		err := repo.Create(ctx, &u)
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.True(t, u.IsActive)
		assert.Equal(t, 0, u.CurrentStreak)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Email, user.Username, user.FullName, user.Avatar).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		u := user
		err := repo.Create(ctx, &u)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Email, user.Username, user.FullName, user.Avatar).
			WillReturnError(errors.New("db error"))
		u := user
		err := repo.Create(ctx, &u)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUserByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:            uuid.New(),
		Email:         "runner@example.com",
		Username:      "runner",
		FullName:      strPtr("Road Runner"),
		Avatar:        strPtr("https://example.com/a.png"),
		IsActive:      true,
		CurrentStreak: 3,
		LongestStreak: 7,
		CreatedAt:     time.Now().UTC(),
	}
	query := regexp.QuoteMeta(`FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(user.ID, user.Email, user.Username, user.FullName,
				user.Avatar, user.IsActive, user.CurrentStreak, user.LongestStreak, user.CreatedAt))
		result, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.ID).WillReturnError(errors.New("db error"))
		_, err := repo.FindByID(ctx, user.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestUpdateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:       uuid.New(),
		Email:    "new@example.com",
		Username: "runner",
	}
	query := regexp.QuoteMeta(`UPDATE users SET email = $1, username = $2, full_name = $3, avatar = $4 WHERE id = $5;`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Email, user.Username, user.FullName, user.Avatar, user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &user))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Email, user.Username, user.FullName, user.Avatar, user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &user), errorvalues.ErrUserNotFound)
	})
	t.Run("email taken", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Email, user.Username, user.FullName, user.Avatar, user.ID).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, repo.Update(ctx, &user), errorvalues.ErrUserExists)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	query := regexp.QuoteMeta(`FROM users ORDER BY created_at;`)

	t.Run("all users", func(t *testing.T) {
		now := time.Now().UTC()
		first := uuid.New()
		conn.ExpectQuery(query).WithArgs().
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(first, "a@example.com", "alice", strPtr("Alice"), (*string)(nil), true, 3, 4, now).
				AddRow(uuid.New(), "b@example.com", "bob", (*string)(nil), (*string)(nil), false, 0, 0, now))
		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, first, users[0].ID)
		assert.Equal(t, "Alice", *users[0].FullName)
		assert.False(t, users[1].IsActive)
	})
	t.Run("query failure", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs().WillReturnError(errors.New("conn closed"))
		_, err := repo.List(ctx)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
