package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository/mocks"
	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/entity"
)

type teamsFixture struct {
	teamsRepo  *mocks.MockTeamsRepositoryI
	usersRepo  *mocks.MockUsersRepositoryI
	goalsRepo  *mocks.MockGoalsRepositoryI
	eventsRepo *mocks.MockEventsRepositoryI
	ts         *service.TeamsService
}

func newTeamsFixture(t *testing.T) *teamsFixture {
	ctrl := gomock.NewController(t)
	f := &teamsFixture{
		teamsRepo:  mocks.NewMockTeamsRepositoryI(ctrl),
		usersRepo:  mocks.NewMockUsersRepositoryI(ctrl),
		goalsRepo:  mocks.NewMockGoalsRepositoryI(ctrl),
		eventsRepo: mocks.NewMockEventsRepositoryI(ctrl),
	}
	f.ts = service.NewTeamsService(f.teamsRepo, f.usersRepo, f.goalsRepo, f.eventsRepo)
	return f
}

func TestCreateTeam(t *testing.T) {
	f := newTeamsFixture(t)
	ctx := context.Background()
	uid := uuid.New()

	t.Run("created", func(t *testing.T) {
		f.teamsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, team *entity.Team) error {
			assert.Equal(t, uid, team.CreatedByID)
			team.ID = uuid.New()
			return nil
		})
		team, err := f.ts.CreateTeam(ctx, uid, service.CreateTeamRequest{Name: "runners"})
		require.NoError(t, err)
		assert.Equal(t, "runners", team.Name)
	})
	t.Run("name required", func(t *testing.T) {
		_, err := f.ts.CreateTeam(ctx, uid, service.CreateTeamRequest{})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestTeamAccess(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()
	member := uuid.New()
	teamID := uuid.New()
	team := func() *entity.Team { return &entity.Team{ID: teamID, Name: "runners", CreatedByID: creator} }

	t.Run("update by non creator", func(t *testing.T) {
		f := newTeamsFixture(t)
		name := "walkers"
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		_, err := f.ts.UpdateTeam(ctx, teamID, member, service.UpdateTeamRequest{Name: &name})
		assert.ErrorIs(t, err, errorvalues.ErrForbidden)
	})
	t.Run("update by creator", func(t *testing.T) {
		f := newTeamsFixture(t)
		name := "walkers"
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.teamsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		updated, err := f.ts.UpdateTeam(ctx, teamID, creator, service.UpdateTeamRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
	})
	t.Run("delete by non creator", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		assert.ErrorIs(t, f.ts.DeleteTeam(ctx, teamID, member), errorvalues.ErrForbidden)
	})
	t.Run("get by outsider", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.teamsRepo.EXPECT().IsMember(gomock.Any(), teamID, member).Return(false, nil)
		_, err := f.ts.GetTeam(ctx, teamID, member)
		assert.ErrorIs(t, err, errorvalues.ErrNotTeamMember)
	})
	t.Run("get by member", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.teamsRepo.EXPECT().IsMember(gomock.Any(), teamID, member).Return(true, nil)
		f.teamsRepo.EXPECT().ListMembers(gomock.Any(), teamID).Return([]entity.User{{ID: creator}, {ID: member}}, nil)
		f.goalsRepo.EXPECT().GetByTeamID(gomock.Any(), teamID).Return([]*entity.Goal{{ID: uuid.New(), TeamID: &teamID}}, nil)
		f.eventsRepo.EXPECT().GetByTeamID(gomock.Any(), teamID).Return(nil, nil)
		page, err := f.ts.GetTeam(ctx, teamID, member)
		require.NoError(t, err)
		assert.Equal(t, "runners", page.Name)
		assert.Len(t, page.Members, 2)
		assert.Len(t, page.Goals, 1)
		assert.NotNil(t, page.Events)
		assert.Empty(t, page.Events)
	})
	t.Run("team events for member", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.teamsRepo.EXPECT().IsMember(gomock.Any(), teamID, member).Return(true, nil)
		f.eventsRepo.EXPECT().GetByTeamID(gomock.Any(), teamID).Return([]*entity.Event{{ID: uuid.New()}}, nil)
		events, err := f.ts.ListTeamEvents(ctx, teamID, member)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})
}

func TestTeamMembers(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()
	member := uuid.New()
	newcomer := uuid.New()
	teamID := uuid.New()
	team := func() *entity.Team { return &entity.Team{ID: teamID, CreatedByID: creator} }

	t.Run("member invites user", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.teamsRepo.EXPECT().IsMember(gomock.Any(), teamID, member).Return(true, nil)
		f.usersRepo.EXPECT().FindByID(gomock.Any(), newcomer).Return(&entity.User{ID: newcomer}, nil)
		f.teamsRepo.EXPECT().AddMember(gomock.Any(), teamID, newcomer).Return(nil)
		f.teamsRepo.EXPECT().ListMembers(gomock.Any(), teamID).Return([]entity.User{{ID: creator}, {ID: member}, {ID: newcomer}}, nil)
		updated, err := f.ts.AddMember(ctx, teamID, member, newcomer)
		require.NoError(t, err)
		assert.Equal(t, teamID, updated.ID)
		assert.Len(t, updated.Members, 3)
	})
	t.Run("outsider can't invite", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.teamsRepo.EXPECT().IsMember(gomock.Any(), teamID, newcomer).Return(false, nil)
		_, err := f.ts.AddMember(ctx, teamID, newcomer, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrNotTeamMember)
	})
	t.Run("unknown user", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.teamsRepo.EXPECT().IsMember(gomock.Any(), teamID, member).Return(true, nil)
		f.usersRepo.EXPECT().FindByID(gomock.Any(), newcomer).Return(nil, errorvalues.ErrUserNotFound)
		_, err := f.ts.AddMember(ctx, teamID, member, newcomer)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("already member", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.teamsRepo.EXPECT().IsMember(gomock.Any(), teamID, creator).Return(true, nil)
		f.usersRepo.EXPECT().FindByID(gomock.Any(), member).Return(&entity.User{ID: member}, nil)
		f.teamsRepo.EXPECT().AddMember(gomock.Any(), teamID, member).Return(errorvalues.ErrAlreadyMember)
		_, err := f.ts.AddMember(ctx, teamID, creator, member)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyMember)
	})
	t.Run("creator removes member", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.usersRepo.EXPECT().FindByID(gomock.Any(), member).Return(&entity.User{ID: member}, nil)
		f.teamsRepo.EXPECT().RemoveMember(gomock.Any(), teamID, member).Return(nil)
		f.teamsRepo.EXPECT().ListMembers(gomock.Any(), teamID).Return([]entity.User{{ID: creator}}, nil)
		updated, err := f.ts.RemoveMember(ctx, teamID, creator, member)
		require.NoError(t, err)
		require.Len(t, updated.Members, 1)
		assert.Equal(t, creator, updated.Members[0].ID)
	})
	t.Run("creator can't be removed", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.usersRepo.EXPECT().FindByID(gomock.Any(), creator).Return(&entity.User{ID: creator}, nil)
		_, err := f.ts.RemoveMember(ctx, teamID, creator, creator)
		assert.ErrorIs(t, err, errorvalues.ErrCannotRemoveCreator)
	})
	t.Run("member can't remove", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		_, err := f.ts.RemoveMember(ctx, teamID, member, newcomer)
		assert.ErrorIs(t, err, errorvalues.ErrForbidden)
	})
	t.Run("remove non member", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.usersRepo.EXPECT().FindByID(gomock.Any(), newcomer).Return(&entity.User{ID: newcomer}, nil)
		f.teamsRepo.EXPECT().RemoveMember(gomock.Any(), teamID, newcomer).Return(errorvalues.ErrTargetNotMember)
		_, err := f.ts.RemoveMember(ctx, teamID, creator, newcomer)
		assert.ErrorIs(t, err, errorvalues.ErrTargetNotMember)
	})
	t.Run("remove unknown user", func(t *testing.T) {
		f := newTeamsFixture(t)
		ghost := uuid.New()
		f.teamsRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team(), nil)
		f.usersRepo.EXPECT().FindByID(gomock.Any(), ghost).Return(nil, errorvalues.ErrUserNotFound)
		_, err := f.ts.RemoveMember(ctx, teamID, creator, ghost)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestListUsersWithTeams(t *testing.T) {
	ctx := context.Background()
	alice := entity.User{ID: uuid.New(), Username: "alice"}
	bob := entity.User{ID: uuid.New(), Username: "bob"}
	runners := entity.Team{ID: uuid.New(), Name: "runners"}

	t.Run("users with and without teams", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.usersRepo.EXPECT().List(gomock.Any()).Return([]entity.User{alice, bob}, nil)
		f.teamsRepo.EXPECT().ListByMembers(gomock.Any(), []uuid.UUID{alice.ID, bob.ID}).
			Return(map[uuid.UUID][]entity.Team{alice.ID: {runners}}, nil)
		users, err := f.ts.ListUsersWithTeams(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].Username)
		require.Len(t, users[0].Teams, 1)
		assert.Equal(t, runners.ID, users[0].Teams[0].ID)
		assert.NotNil(t, users[1].Teams)
		assert.Empty(t, users[1].Teams)
	})
	t.Run("repository failure", func(t *testing.T) {
		f := newTeamsFixture(t)
		f.usersRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection reset"))
		_, err := f.ts.ListUsersWithTeams(ctx)
		assert.Error(t, err)
	})
}
