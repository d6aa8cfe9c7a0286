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

type GoalsService struct {
	goalsRepo repository.GoalsRepositoryI
	teamsRepo repository.TeamsRepositoryI
	progress  repository.ProgressStore
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, teamsRepo repository.TeamsRepositoryI, progress repository.ProgressStore) *GoalsService {
	if goalsRepo == nil || teamsRepo == nil || progress == nil {
		log.Fatal("on goals service provided nil repos")
	}
	return &GoalsService{
		goalsRepo: goalsRepo,
		teamsRepo: teamsRepo,
		progress:  progress,
	}
}

func (serv *GoalsService) CreateGoal(ctx context.Context, userID uuid.UUID, req CreateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.TeamID != nil {
		if err := requireMember(ctx, serv.teamsRepo, *req.TeamID, userID); err != nil {
			return nil, err
		}
	}
	goal := &entity.Goal{
		UserID:      userID,
		TeamID:      req.TeamID,
		Title:       req.Title,
		Description: req.Description,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		TargetDate:  req.TargetDate,
		IsRecurring: req.IsRecurring,
		Frequency:   req.Frequency,
	}
	err := serv.goalsRepo.Create(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) || errors.Is(err, errorvalues.ErrTeamNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return goal, nil
}

// GetGoal returns an owned goal together with its progress log.
func (serv *GoalsService) GetGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.GoalWithProgress, error) {
	goal, err := ownedGoal(ctx, serv.goalsRepo, goalID, userID)
	if err != nil {
		return nil, err
	}
	logs, err := serv.progress.GetByGoalID(ctx, goalID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if logs == nil {
		logs = []entity.GoalProgress{}
	}
	return &entity.GoalWithProgress{
		Goal:         *goal,
		ProgressLogs: logs,
	}, nil
}

func (serv *GoalsService) ListGoals(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	goals, err := serv.goalsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return goals, nil
}

func (serv *GoalsService) UpdateGoal(ctx context.Context, goalID, userID uuid.UUID, req UpdateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	goal, err := ownedGoal(ctx, serv.goalsRepo, goalID, userID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = req.Description
	}
	if req.Unit != nil {
		goal.Unit = *req.Unit
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}
	if req.IsRecurring != nil {
		goal.IsRecurring = *req.IsRecurring
	}
	if req.Frequency != nil {
		goal.Frequency = req.Frequency
	}
	err = serv.goalsRepo.Update(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return goal, nil
}

func (serv *GoalsService) DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error {
	if _, err := ownedGoal(ctx, serv.goalsRepo, goalID, userID); err != nil {
		return err
	}
	err := serv.goalsRepo.Delete(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *GoalsService) ListTeamGoals(ctx context.Context, teamID, userID uuid.UUID) ([]*entity.Goal, error) {
	if _, err := memberTeam(ctx, serv.teamsRepo, teamID, userID); err != nil {
		return nil, err
	}
	goals, err := serv.goalsRepo.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return goals, nil
}
