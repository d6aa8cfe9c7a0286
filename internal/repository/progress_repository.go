package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/entity"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) WithinTx(ctx context.Context, fn func(tx ProgressTx) error) error {
	return withTx(ctx, pr.conn, func(tx pgx.Tx) error {
		return fn(&progressTx{tx: tx})
	})
}

func (pr *ProgressRepository) GetByGoalID(ctx context.Context, goalID uuid.UUID) ([]entity.GoalProgress, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, goal_id, value, notes, logged_at FROM goal_progress
		WHERE goal_id = $1 ORDER BY seq;`, goalID)
	if err != nil {
		return nil, errors.New("getting goal progress error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.GoalProgress, 0)
	for rows.Next() {
		var p entity.GoalProgress
		err = rows.Scan(&p.ID, &p.GoalID, &p.Value, &p.Notes, &p.LoggedAt)
		if err != nil {
			return nil, errors.New("progress row parsing error: " + err.Error())
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected progress rows error: " + err.Error())
	}
	return result, nil
}

type progressTx struct {
	tx pgx.Tx
}

func (ptx *progressTx) LockGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	row := ptx.tx.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1 AND user_id = $2 FOR UPDATE;`, goalID, userID)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("locking goal error: " + err.Error())
	}
	return goal, nil
}

func (ptx *progressTx) InsertProgress(ctx context.Context, progress *entity.GoalProgress) error {
	row := ptx.tx.QueryRow(ctx, `INSERT INTO goal_progress (goal_id, value, notes) VALUES ($1, $2, $3) RETURNING id, logged_at;`,
		progress.GoalID,
		progress.Value,
		progress.Notes,
	)
	if err := row.Scan(&progress.ID, &progress.LoggedAt); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrGoalNotFound
		}
		return errors.New("inserting progress error: " + err.Error())
	}
	return nil
}

func (ptx *progressTx) AddToCurrentValue(ctx context.Context, goalID uuid.UUID, delta float64) (float64, error) {
	row := ptx.tx.QueryRow(ctx, `UPDATE goals SET current_value = current_value + $1, updated_at = NOW() WHERE id = $2 RETURNING current_value;`,
		delta,
		goalID,
	)
	var current float64
	if err := row.Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrGoalNotFound
		}
		return 0, errors.New("updating current value error: " + err.Error())
	}
	return current, nil
}

func (ptx *progressTx) MarkCompleted(ctx context.Context, goalID uuid.UUID) (time.Time, bool, error) {
	row := ptx.tx.QueryRow(ctx, `UPDATE goals SET is_completed = TRUE, completed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND is_completed = FALSE RETURNING completed_at;`, goalID)
	var completedAt time.Time
	if err := row.Scan(&completedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, errors.New("marking goal completed error: " + err.Error())
	}
	return completedAt, true, nil
}

func (ptx *progressTx) IncrementStreak(ctx context.Context, userID uuid.UUID) (*entity.Streak, error) {
	row := ptx.tx.QueryRow(ctx, `UPDATE users SET current_streak = current_streak + 1,
		longest_streak = GREATEST(longest_streak, current_streak + 1) WHERE id = $1 RETURNING current_streak, longest_streak;`, userID)
	var streak entity.Streak
	if err := row.Scan(&streak.Current, &streak.Longest); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("incrementing streak error: " + err.Error())
	}
	return &streak, nil
}
