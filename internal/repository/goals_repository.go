package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/entity"
)

const goalColumns = `id, user_id, team_id, title, description, target_value, current_value, unit, target_date,
	is_completed, completed_at, is_recurring, frequency, created_at, updated_at`

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) error {
	row := gr.conn.QueryRow(ctx, `INSERT INTO goals (user_id, team_id, title, description, target_value, unit, target_date, is_recurring, frequency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, current_value, is_completed, created_at, updated_at;`,
		goal.UserID,
		goal.TeamID,
		goal.Title,
		goal.Description,
		goal.TargetValue,
		goal.Unit,
		goal.TargetDate,
		goal.IsRecurring,
		goal.Frequency,
	)
	err := row.Scan(&goal.ID, &goal.CurrentValue, &goal.IsCompleted, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		switch pgErrCode(err) {
		// Owner or team doesn't exist
		case pgForeignKeyViolation:
			if goal.TeamID != nil {
				return errorvalues.ErrTeamNotFound
			}
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating goal db error: " + err.Error())
	}
	return nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	row := gr.conn.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1;`, id)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return goal, nil
}

func (gr *GoalsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT `+goalColumns+` FROM goals WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting goals by uid error: " + err.Error())
	}
	return collectGoals(rows)
}

func (gr *GoalsRepository) GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]*entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT `+goalColumns+` FROM goals WHERE team_id = $1 ORDER BY created_at DESC;`, teamID)
	if err != nil {
		return nil, errors.New("getting goals by team error: " + err.Error())
	}
	return collectGoals(rows)
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE goals SET title = $1, description = $2, unit = $3, target_date = $4,
		is_recurring = $5, frequency = $6, updated_at = NOW() WHERE id = $7;`,
		goal.Title,
		goal.Description,
		goal.Unit,
		goal.TargetDate,
		goal.IsRecurring,
		goal.Frequency,
		goal.ID,
	)
	if err != nil {
		return errors.New("error updating goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func scanGoal(row pgx.Row) (*entity.Goal, error) {
	var g entity.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.TeamID, &g.Title, &g.Description, &g.TargetValue, &g.CurrentValue,
		&g.Unit, &g.TargetDate, &g.IsCompleted, &g.CompletedAt, &g.IsRecurring, &g.Frequency, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func collectGoals(rows pgx.Rows) ([]*entity.Goal, error) {
	defer rows.Close()
	goals := make([]*entity.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, errors.New("unmarshalling goal error: " + err.Error())
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning goals: " + err.Error())
	}
	return goals, nil
}
