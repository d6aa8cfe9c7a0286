package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/goalkeeper/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . UserServiceI,GoalsServiceI,ProgressServiceI,TeamsServiceI,EventsServiceI

type CreateUserRequest struct {
	Email    string  `validate:"required,email,max=255"`
	Username string  `validate:"required,username,min=3,max=100"`
	FullName *string `validate:"omitempty,max=255"`
}

type UpdateUserRequest struct {
	Email    *string `validate:"omitempty,email,max=255"`
	Username *string `validate:"omitempty,username,min=3,max=100"`
	FullName *string `validate:"omitempty,max=255"`
	Avatar   *string `validate:"omitempty,max=2048"`
}

type CreateGoalRequest struct {
	Title       string  `validate:"required,max=255"`
	Description *string
	TargetValue float64 `validate:"gt=0"`
	Unit        string  `validate:"required,max=50"`
	TargetDate  *time.Time
	IsRecurring bool
	Frequency   *string `validate:"omitempty,goal_frequency"`
	TeamID      *uuid.UUID
}

// Progress columns (current value, completion, target) are not editable here
type UpdateGoalRequest struct {
	Title       *string `validate:"omitempty,min=1,max=255"`
	Description *string
	Unit        *string `validate:"omitempty,min=1,max=50"`
	TargetDate  *time.Time
	IsRecurring *bool
	Frequency   *string `validate:"omitempty,goal_frequency"`
}

type CreateTeamRequest struct {
	Name           string `validate:"required,max=255"`
	Description    *string
	CycleName      *string `validate:"omitempty,max=255"`
	CycleStartDate *time.Time
	CycleEndDate   *time.Time
}

type UpdateTeamRequest struct {
	Name           *string `validate:"omitempty,min=1,max=255"`
	Description    *string
	CycleName      *string `validate:"omitempty,max=255"`
	CycleStartDate *time.Time
	CycleEndDate   *time.Time
}

type CreateEventRequest struct {
	Title       string    `validate:"required,max=255"`
	Description *string
	StartTime   time.Time `validate:"required"`
	EndTime     time.Time `validate:"required,gtfield=StartTime"`
	EventType   string    `validate:"omitempty,max=50"`
	Location    *string   `validate:"omitempty,max=255"`
	MeetingLink *string
	TeamID      *uuid.UUID
	AttendeeIDs []uuid.UUID
}

// Nil AttendeeIDs keeps attendees as is, empty slice leaves only the organizer
type UpdateEventRequest struct {
	Title       *string `validate:"omitempty,min=1,max=255"`
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	EventType   *string `validate:"omitempty,min=1,max=50"`
	Location    *string `validate:"omitempty,max=255"`
	MeetingLink *string
	TeamID      *uuid.UUID
	AttendeeIDs []uuid.UUID
}

type UserServiceI interface {
	// Validates profile data and creates new user
	CreateUser(ctx context.Context, req *CreateUserRequest) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Applies non-nil fields of req to user's profile
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*entity.User, error)
}

type GoalsServiceI interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, req CreateGoalRequest) (*entity.Goal, error)
	// Owned goal with its progress log
	GetGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.GoalWithProgress, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)
	UpdateGoal(ctx context.Context, goalID, userID uuid.UUID, req UpdateGoalRequest) (*entity.Goal, error)
	DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error
	// Goals of the team, visible to team members only
	ListTeamGoals(ctx context.Context, teamID, userID uuid.UUID) ([]*entity.Goal, error)
}

type ProgressServiceI interface {
	// Appends progress entry and updates goal and owner's streak atomically
	RecordProgress(ctx context.Context, goalID, userID uuid.UUID, value float64, notes *string) (*entity.GoalProgress, error)
	// Returns progress log in insertion order
	GetProgress(ctx context.Context, goalID, userID uuid.UUID) ([]entity.GoalProgress, error)
}

type TeamsServiceI interface {
	CreateTeam(ctx context.Context, userID uuid.UUID, req CreateTeamRequest) (*entity.Team, error)
	ListMyTeams(ctx context.Context, userID uuid.UUID) ([]*entity.Team, error)
	// Team with members, goals and events, visible to members only
	GetTeam(ctx context.Context, teamID, userID uuid.UUID) (*entity.TeamComplete, error)
	UpdateTeam(ctx context.Context, teamID, userID uuid.UUID, req UpdateTeamRequest) (*entity.Team, error)
	DeleteTeam(ctx context.Context, teamID, userID uuid.UUID) error
	// Both return the team with its updated member list
	AddMember(ctx context.Context, teamID, actorID, memberID uuid.UUID) (*entity.TeamWithMembers, error)
	RemoveMember(ctx context.Context, teamID, actorID, memberID uuid.UUID) (*entity.TeamWithMembers, error)
	ListMembers(ctx context.Context, teamID, userID uuid.UUID) ([]entity.User, error)
	ListTeamEvents(ctx context.Context, teamID, userID uuid.UUID) ([]*entity.Event, error)
	// Every user with the teams they belong to
	ListUsersWithTeams(ctx context.Context) ([]entity.UserWithTeams, error)
}

type EventsServiceI interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, req CreateEventRequest) (*entity.EventWithAttendees, error)
	// Events organized or attended by user. Nil bounds are ignored
	ListEvents(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.Event, error)
	GetEvent(ctx context.Context, eventID, userID uuid.UUID) (*entity.EventWithAttendees, error)
	UpdateEvent(ctx context.Context, eventID, userID uuid.UUID, req UpdateEventRequest) (*entity.EventWithAttendees, error)
	DeleteEvent(ctx context.Context, eventID, userID uuid.UUID) error
	Attend(ctx context.Context, eventID, userID uuid.UUID) (*entity.EventWithAttendees, error)
	CancelAttendance(ctx context.Context, eventID, userID uuid.UUID) (*entity.EventWithAttendees, error)
	EventsForDay(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Event, error)
	EventsForWeek(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Event, error)
	EventsForMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month, loc *time.Location) ([]*entity.Event, error)
}
