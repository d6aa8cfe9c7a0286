package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	FullName      *string   `json:"full_name,omitempty"`
	Avatar        *string   `json:"avatar,omitempty"`
	IsActive      bool      `json:"is_active"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	CreatedAt     time.Time `json:"created_at"`
}

type Goal struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	TeamID       *uuid.UUID `json:"team_id,omitempty"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	Unit         string     `json:"unit"`
	TargetDate   *time.Time `json:"target_date,omitempty"`
	IsCompleted  bool       `json:"is_completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	IsRecurring  bool       `json:"is_recurring"`
	Frequency    *string    `json:"frequency,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ShouldComplete reports whether the goal has just reached its target and
// has not been completed yet. A completed goal never completes again.
func (g *Goal) ShouldComplete() bool {
	return !g.IsCompleted && g.CurrentValue >= g.TargetValue
}

type GoalProgress struct {
	ID       uuid.UUID `json:"id"`
	GoalID   uuid.UUID `json:"goal_id"`
	Value    float64   `json:"value"`
	Notes    *string   `json:"notes,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

// Streak is the pair of counters stored on the user row.
type Streak struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

type Team struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Description    *string    `json:"description,omitempty"`
	CreatedByID    uuid.UUID  `json:"created_by_id"`
	CycleName      *string    `json:"cycle_name,omitempty"`
	CycleStartDate *time.Time `json:"cycle_start_date,omitempty"`
	CycleEndDate   *time.Time `json:"cycle_end_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type Event struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	EventType   string     `json:"event_type"`
	Location    *string    `json:"location,omitempty"`
	MeetingLink *string    `json:"meeting_link,omitempty"`
	OrganizerID uuid.UUID  `json:"organizer_id"`
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type EventWithAttendees struct {
	Event
	Attendees []User `json:"attendees"`
}

type GoalWithProgress struct {
	Goal
	ProgressLogs []GoalProgress `json:"progress_logs"`
}

type TeamWithMembers struct {
	Team
	Members []User `json:"members"`
}

// TeamComplete is the team page: members, team goals and team events.
type TeamComplete struct {
	Team
	Members []User  `json:"members"`
	Goals   []*Goal  `json:"goals"`
	Events  []*Event `json:"events"`
}

type UserWithTeams struct {
	User
	Teams []Team `json:"teams"`
}
