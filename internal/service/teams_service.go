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

type TeamsService struct {
	teamsRepo  repository.TeamsRepositoryI
	usersRepo  repository.UsersRepositoryI
	goalsRepo  repository.GoalsRepositoryI
	eventsRepo repository.EventsRepositoryI
}

func NewTeamsService(teamsRepo repository.TeamsRepositoryI, usersRepo repository.UsersRepositoryI,
	goalsRepo repository.GoalsRepositoryI, eventsRepo repository.EventsRepositoryI) *TeamsService {
	if teamsRepo == nil || usersRepo == nil || goalsRepo == nil || eventsRepo == nil {
		log.Fatal("on teams service provided nil repos")
	}
	return &TeamsService{
		teamsRepo:  teamsRepo,
		usersRepo:  usersRepo,
		goalsRepo:  goalsRepo,
		eventsRepo: eventsRepo,
	}
}

func (serv *TeamsService) CreateTeam(ctx context.Context, userID uuid.UUID, req CreateTeamRequest) (*entity.Team, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	team := &entity.Team{
		Name:           req.Name,
		Description:    req.Description,
		CreatedByID:    userID,
		CycleName:      req.CycleName,
		CycleStartDate: req.CycleStartDate,
		CycleEndDate:   req.CycleEndDate,
	}
	err := serv.teamsRepo.Create(ctx, team)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return team, nil
}

func (serv *TeamsService) ListMyTeams(ctx context.Context, userID uuid.UUID) ([]*entity.Team, error) {
	teams, err := serv.teamsRepo.GetByMember(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return teams, nil
}

func (serv *TeamsService) GetTeam(ctx context.Context, teamID, userID uuid.UUID) (*entity.TeamComplete, error) {
	team, err := memberTeam(ctx, serv.teamsRepo, teamID, userID)
	if err != nil {
		return nil, err
	}
	members, err := serv.teamsRepo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	goals, err := serv.goalsRepo.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	events, err := serv.eventsRepo.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if goals == nil {
		goals = []*entity.Goal{}
	}
	if events == nil {
		events = []*entity.Event{}
	}
	return &entity.TeamComplete{
		Team:    *team,
		Members: nonNilUsers(members),
		Goals:   goals,
		Events:  events,
	}, nil
}

func (serv *TeamsService) UpdateTeam(ctx context.Context, teamID, userID uuid.UUID, req UpdateTeamRequest) (*entity.Team, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	team, err := serv.createdTeam(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = req.Description
	}
	if req.CycleName != nil {
		team.CycleName = req.CycleName
	}
	if req.CycleStartDate != nil {
		team.CycleStartDate = req.CycleStartDate
	}
	if req.CycleEndDate != nil {
		team.CycleEndDate = req.CycleEndDate
	}
	err = serv.teamsRepo.Update(ctx, team)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTeamNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return team, nil
}

func (serv *TeamsService) DeleteTeam(ctx context.Context, teamID, userID uuid.UUID) error {
	if _, err := serv.createdTeam(ctx, teamID, userID); err != nil {
		return err
	}
	err := serv.teamsRepo.Delete(ctx, teamID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTeamNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

// AddMember lets any member of the team invite an existing user.
func (serv *TeamsService) AddMember(ctx context.Context, teamID, actorID, memberID uuid.UUID) (*entity.TeamWithMembers, error) {
	team, err := memberTeam(ctx, serv.teamsRepo, teamID, actorID)
	if err != nil {
		return nil, err
	}
	if err = serv.requireUser(ctx, memberID); err != nil {
		return nil, err
	}
	err = serv.teamsRepo.AddMember(ctx, teamID, memberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyMember) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return serv.withMembers(ctx, team)
}

// RemoveMember is allowed to the team creator only. The creator can't be removed.
func (serv *TeamsService) RemoveMember(ctx context.Context, teamID, actorID, memberID uuid.UUID) (*entity.TeamWithMembers, error) {
	team, err := serv.createdTeam(ctx, teamID, actorID)
	if err != nil {
		return nil, err
	}
	if err = serv.requireUser(ctx, memberID); err != nil {
		return nil, err
	}
	if memberID == team.CreatedByID {
		return nil, errorvalues.ErrCannotRemoveCreator
	}
	err = serv.teamsRepo.RemoveMember(ctx, teamID, memberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTargetNotMember) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return serv.withMembers(ctx, team)
}

func (serv *TeamsService) ListMembers(ctx context.Context, teamID, userID uuid.UUID) ([]entity.User, error) {
	if _, err := memberTeam(ctx, serv.teamsRepo, teamID, userID); err != nil {
		return nil, err
	}
	members, err := serv.teamsRepo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return members, nil
}

func (serv *TeamsService) ListTeamEvents(ctx context.Context, teamID, userID uuid.UUID) ([]*entity.Event, error) {
	if _, err := memberTeam(ctx, serv.teamsRepo, teamID, userID); err != nil {
		return nil, err
	}
	events, err := serv.eventsRepo.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return events, nil
}

func (serv *TeamsService) ListUsersWithTeams(ctx context.Context) ([]entity.UserWithTeams, error) {
	users, err := serv.usersRepo.List(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	uids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		uids = append(uids, u.ID)
	}
	memberships, err := serv.teamsRepo.ListByMembers(ctx, uids)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	res := make([]entity.UserWithTeams, 0, len(users))
	for _, u := range users {
		teams := memberships[u.ID]
		if teams == nil {
			teams = []entity.Team{}
		}
		res = append(res, entity.UserWithTeams{User: u, Teams: teams})
	}
	return res, nil
}

func (serv *TeamsService) requireUser(ctx context.Context, uid uuid.UUID) error {
	_, err := serv.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *TeamsService) withMembers(ctx context.Context, team *entity.Team) (*entity.TeamWithMembers, error) {
	members, err := serv.teamsRepo.ListMembers(ctx, team.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entity.TeamWithMembers{
		Team:    *team,
		Members: nonNilUsers(members),
	}, nil
}

func nonNilUsers(users []entity.User) []entity.User {
	if users == nil {
		return []entity.User{}
	}
	return users
}

func (serv *TeamsService) createdTeam(ctx context.Context, teamID, userID uuid.UUID) (*entity.Team, error) {
	team, err := loadTeam(ctx, serv.teamsRepo, teamID)
	if err != nil {
		return nil, err
	}
	if team.CreatedByID != userID {
		return nil, errorvalues.ErrForbidden
	}
	return team, nil
}

func loadTeam(ctx context.Context, repo repository.TeamsRepositoryI, teamID uuid.UUID) (*entity.Team, error) {
	team, err := repo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTeamNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return team, nil
}

// memberTeam loads the team and checks that userID belongs to it.
func memberTeam(ctx context.Context, repo repository.TeamsRepositoryI, teamID, userID uuid.UUID) (*entity.Team, error) {
	team, err := loadTeam(ctx, repo, teamID)
	if err != nil {
		return nil, err
	}
	if err = requireMember(ctx, repo, teamID, userID); err != nil {
		return nil, err
	}
	return team, nil
}

func requireMember(ctx context.Context, repo repository.TeamsRepositoryI, teamID, userID uuid.UUID) error {
	ok, err := repo.IsMember(ctx, teamID, userID)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	if !ok {
		return errorvalues.ErrNotTeamMember
	}
	return nil
}
