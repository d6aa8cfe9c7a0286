package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/pkg/entity"
)

type ProgressService struct {
	store     repository.ProgressStore
	goalsRepo repository.GoalsRepositoryI
}

func NewProgressService(store repository.ProgressStore, goalsRepo repository.GoalsRepositoryI) *ProgressService {
	if store == nil || goalsRepo == nil {
		log.Fatal("on progress service provided nil repos")
	}
	return &ProgressService{
		store:     store,
		goalsRepo: goalsRepo,
	}
}

// RecordProgress logs value against the goal. Value is a delta and may be negative.
// When the running total reaches the target for the first time the goal is completed
// and the owner's streak grows by one. The goal row stays locked until commit, so
// concurrent submissions crossing the target complete the goal only once.
// A goal owned by another user is reported as ErrGoalNotFound.
func (serv *ProgressService) RecordProgress(ctx context.Context, goalID, userID uuid.UUID, value float64, notes *string) (*entity.GoalProgress, error) {
	progress := &entity.GoalProgress{
		GoalID: goalID,
		Value:  value,
		Notes:  notes,
	}
	err := serv.store.WithinTx(ctx, func(tx repository.ProgressTx) error {
		goal, err := tx.LockGoal(ctx, goalID, userID)
		if err != nil {
			return err
		}
		if err = tx.InsertProgress(ctx, progress); err != nil {
			return err
		}
		goal.CurrentValue, err = tx.AddToCurrentValue(ctx, goalID, value)
		if err != nil {
			return err
		}
		if !goal.ShouldComplete() {
			return nil
		}
		_, completed, err := tx.MarkCompleted(ctx, goalID)
		if err != nil || !completed {
			return err
		}
		_, err = tx.IncrementStreak(ctx, goal.UserID)
		return err
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("recording progress error: " + err.Error())
	}
	return progress, nil
}

func (serv *ProgressService) GetProgress(ctx context.Context, goalID, userID uuid.UUID) ([]entity.GoalProgress, error) {
	if _, err := ownedGoal(ctx, serv.goalsRepo, goalID, userID); err != nil {
		return nil, err
	}
	entries, err := serv.store.GetByGoalID(ctx, goalID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}

// ownedGoal loads the goal and hides goals of other users behind ErrGoalNotFound.
func ownedGoal(ctx context.Context, repo repository.GoalsRepositoryI, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if goal.UserID != userID {
		return nil, errorvalues.ErrGoalNotFound
	}
	return goal, nil
}
