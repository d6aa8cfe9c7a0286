package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (email, username, full_name, avatar) VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, current_streak, longest_streak, created_at;`,
		user.Email, user.Username, user.FullName, user.Avatar,
	)
	err := row.Scan(&user.ID, &user.IsActive, &user.CurrentStreak, &user.LongestStreak, &user.CreatedAt)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT id, email, username, full_name, avatar, is_active, current_streak, longest_streak, created_at
		FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET email = $1, username = $2, full_name = $3, avatar = $4 WHERE id = $5;`,
		user.Email,
		user.Username,
		user.FullName,
		user.Avatar,
		user.ID,
	)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("updating user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id, email, username, full_name, avatar, is_active, current_streak, longest_streak, created_at
		FROM users ORDER BY created_at;`)
	if err != nil {
		return nil, errors.New("listing users error: " + err.Error())
	}
	return collectUsers(rows)
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(&user.ID, &user.Email, &user.Username, &user.FullName, &user.Avatar,
		&user.IsActive, &user.CurrentStreak, &user.LongestStreak, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// collectUsers drains rows produced by a query selecting the same columns as FindByID.
func collectUsers(rows pgx.Rows) ([]entity.User, error) {
	defer rows.Close()
	users := make([]entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, errors.New("unmarshalling user error: " + err.Error())
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning users: " + err.Error())
	}
	return users, nil
}
