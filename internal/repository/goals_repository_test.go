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

var goalColumns = []string{"id", "user_id", "team_id", "title", "description", "target_value", "current_value",
	"unit", "target_date", "is_completed", "completed_at", "is_recurring", "frequency", "created_at", "updated_at"}

func goalRow(rows *pgxmock.Rows, g *entity.Goal) *pgxmock.Rows {
	return rows.AddRow(g.ID, g.UserID, g.TeamID, g.Title, g.Description, g.TargetValue, g.CurrentValue,
		g.Unit, g.TargetDate, g.IsCompleted, g.CompletedAt, g.IsRecurring, g.Frequency, g.CreatedAt, g.UpdatedAt)
}

func testGoal(userID uuid.UUID) *entity.Goal {
	now := time.Now().UTC()
	return &entity.Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "run 10km",
		Description: strPtr("weekly distance"),
		TargetValue: 10,
		Unit:        "km",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func createGoalArgs(g *entity.Goal) []any {
	return []any{g.UserID, g.TeamID, g.Title, g.Description, g.TargetValue, g.Unit, g.TargetDate, g.IsRecurring, g.Frequency}
}

func TestCreateGoal(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	query := regexp.QuoteMeta(`INSERT INTO goals (user_id, team_id, title, description, target_value, unit, target_date, is_recurring, frequency)`)
	returning := []string{"id", "current_value", "is_completed", "created_at", "updated_at"}
	teamID := uuid.New()

	t.Run("created", func(t *testing.T) {
		goal := testGoal(uuid.New())
		goal.ID = uuid.Nil
		id := uuid.New()
		now := time.Now()
		conn.ExpectQuery(query).
			WithArgs(createGoalArgs(goal)...).
			WillReturnRows(pgxmock.NewRows(returning).AddRow(id, 0.0, false, now, now))
		require.NoError(t, repo.Create(ctx, goal))
		assert.Equal(t, id, goal.ID)
		assert.Equal(t, 0.0, goal.CurrentValue)
		assert.False(t, goal.IsCompleted)
	})
	t.Run("unknown team", func(t *testing.T) {
		goal := testGoal(uuid.New())
		goal.TeamID = &teamID
		conn.ExpectQuery(query).WithArgs(createGoalArgs(goal)...).WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Create(ctx, goal), errorvalues.ErrTeamNotFound)
	})
	t.Run("unknown owner", func(t *testing.T) {
		goal := testGoal(uuid.New())
		conn.ExpectQuery(query).WithArgs(createGoalArgs(goal)...).WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Create(ctx, goal), errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		goal := testGoal(uuid.New())
		conn.ExpectQuery(query).WithArgs(createGoalArgs(goal)...).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Create(ctx, goal))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestGetGoal(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	goal := testGoal(uuid.New())
	completedAt := time.Now().UTC()
	goal.CurrentValue = 11
	goal.IsCompleted = true
	goal.CompletedAt = &completedAt
	query := regexp.QuoteMeta(`FROM goals WHERE id = $1;`)

	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(goal.ID).WillReturnRows(goalRow(pgxmock.NewRows(goalColumns), goal))
		result, err := repo.GetByID(ctx, goal.ID)
		require.NoError(t, err)
		assert.Equal(t, *goal, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(goal.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, goal.ID)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}

func TestListGoals(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	userID := uuid.New()
	teamID := uuid.New()
	goals := []*entity.Goal{testGoal(userID), testGoal(userID), testGoal(userID)}
	for _, g := range goals {
		g.TeamID = &teamID
	}

	t.Run("by user", func(t *testing.T) {
		rows := pgxmock.NewRows(goalColumns)
		for _, g := range goals {
			goalRow(rows, g)
		}
		conn.ExpectQuery(regexp.QuoteMeta(`FROM goals WHERE user_id = $1 ORDER BY created_at DESC;`)).
			WithArgs(userID).WillReturnRows(rows)
		result, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, result, 3)
		for i := range goals {
			assert.Equal(t, *goals[i], *result[i])
		}
	})
	t.Run("by team, empty", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM goals WHERE team_id = $1 ORDER BY created_at DESC;`)).
			WithArgs(teamID).WillReturnRows(pgxmock.NewRows(goalColumns))
		result, err := repo.GetByTeamID(ctx, teamID)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM goals WHERE user_id = $1`)).
			WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID)
		assert.Error(t, err)
	})
}

func TestUpdateDeleteGoal(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	goal := testGoal(uuid.New())
	update := regexp.QuoteMeta(`UPDATE goals SET title = $1, description = $2, unit = $3, target_date = $4,`)
	del := regexp.QuoteMeta(`DELETE FROM goals WHERE id = $1;`)

	t.Run("update", func(t *testing.T) {
		conn.ExpectExec(update).
			WithArgs(goal.Title, goal.Description, goal.Unit, goal.TargetDate, goal.IsRecurring, goal.Frequency, goal.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, goal))
	})
	t.Run("update missing", func(t *testing.T) {
		conn.ExpectExec(update).
			WithArgs(goal.Title, goal.Description, goal.Unit, goal.TargetDate, goal.IsRecurring, goal.Frequency, goal.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, goal), errorvalues.ErrGoalNotFound)
	})
	t.Run("delete", func(t *testing.T) {
		conn.ExpectExec(del).WithArgs(goal.ID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, goal.ID))
	})
	t.Run("delete missing", func(t *testing.T) {
		conn.ExpectExec(del).WithArgs(goal.ID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, goal.ID), errorvalues.ErrGoalNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
