package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/goalkeeper/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . UsersRepositoryI,GoalsRepositoryI,ProgressStore,ProgressTx,TeamsRepositoryI,EventsRepositoryI

type UsersRepositoryI interface {
	// Creates new user. ID, IsActive, streaks and CreatedAt are filled from the inserted row
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates profile fields. Streak counters are never written here
	Update(ctx context.Context, user *entity.User) error
	// Lists all users, oldest first
	List(ctx context.Context) ([]entity.User, error)
}

type GoalsRepositoryI interface {
	// Creates new goal. ID, CreatedAt and UpdatedAt are filled from the inserted row
	Create(ctx context.Context, goal *entity.Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Lists goals owned by user, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error)
	GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]*entity.Goal, error)
	// Updates descriptive fields only. Progress related columns are owned by ProgressStore
	Update(ctx context.Context, goal *entity.Goal) error
	// Deletes goal with its progress log
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProgressStore runs the progress workflow inside one database transaction.
type ProgressStore interface {
	// Begins a transaction, runs fn and commits. Any error returned by fn
	// (or a panic inside it) rolls everything back.
	WithinTx(ctx context.Context, fn func(tx ProgressTx) error) error
	// Returns progress log of the goal in insertion order
	GetByGoalID(ctx context.Context, goalID uuid.UUID) ([]entity.GoalProgress, error)
}

// ProgressTx is the set of statements available inside ProgressStore.WithinTx.
type ProgressTx interface {
	// Selects goal row FOR UPDATE. Returns ErrGoalNotFound when goal is missing or owned by someone else
	LockGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error)
	// Appends progress entry, fills ID and LoggedAt
	InsertProgress(ctx context.Context, progress *entity.GoalProgress) error
	// Adds delta to cached current value, returns the new value
	AddToCurrentValue(ctx context.Context, goalID uuid.UUID, delta float64) (float64, error)
	// Flips is_completed only if it is still false. ok is false when the goal was already completed
	MarkCompleted(ctx context.Context, goalID uuid.UUID) (completedAt time.Time, ok bool, err error)
	// Bumps current streak and raises longest streak when it is exceeded
	IncrementStreak(ctx context.Context, userID uuid.UUID) (*entity.Streak, error)
}

type TeamsRepositoryI interface {
	// Creates team and adds its creator as a member in one transaction
	Create(ctx context.Context, team *entity.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Team, error)
	// Lists teams where user is a member
	GetByMember(ctx context.Context, uid uuid.UUID) ([]*entity.Team, error)
	Update(ctx context.Context, team *entity.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	IsMember(ctx context.Context, teamID, uid uuid.UUID) (bool, error)
	AddMember(ctx context.Context, teamID, uid uuid.UUID) error
	RemoveMember(ctx context.Context, teamID, uid uuid.UUID) error
	ListMembers(ctx context.Context, teamID uuid.UUID) ([]entity.User, error)
	// Teams of every given user keyed by user id
	ListByMembers(ctx context.Context, uids []uuid.UUID) (map[uuid.UUID][]entity.Team, error)
}

type EventsRepositoryI interface {
	// Creates event. Organizer and every existing user from attendeeIDs become attendees,
	// unknown ids are skipped
	Create(ctx context.Context, event *entity.Event, attendeeIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	// Events organized or attended by user. Nil bounds are not applied
	ListForUser(ctx context.Context, uid uuid.UUID, from, to *time.Time) ([]*entity.Event, error)
	// Events organized or attended by user which start in [from, to)
	ListForUserStartingIn(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.Event, error)
	GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]*entity.Event, error)
	// Updates event fields. When attendeeIDs is not nil the attendee list is replaced,
	// organizer always stays
	Update(ctx context.Context, event *entity.Event, attendeeIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	IsAttendee(ctx context.Context, eventID, uid uuid.UUID) (bool, error)
	AddAttendee(ctx context.Context, eventID, uid uuid.UUID) error
	RemoveAttendee(ctx context.Context, eventID, uid uuid.UUID) error
	ListAttendees(ctx context.Context, eventID uuid.UUID) ([]entity.User, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
	// Zero keeps the pgxpool default
	MaxConns int
}

func (pgcfg *PGCfg) MaxPoolConns() int {
	return pgcfg.MaxConns
}

func (pgcfg *PGCfg) ConnString() string {
	sslMode := pgcfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB, sslMode)
}
