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

const eventColumns = `id, title, description, start_time, end_time, event_type, location, meeting_link, organizer_id, team_id, created_at`

// Organizer or attendee of the event
const eventVisibleTo = `(organizer_id = $1 OR EXISTS (SELECT 1 FROM event_attendees a WHERE a.event_id = events.id AND a.user_id = $1))`

type EventsRepository struct {
	conn PgConnection
}

func NewEventsRepoWithConn(conn PgConnection) *EventsRepository {
	return &EventsRepository{
		conn: conn,
	}
}

func (er *EventsRepository) Create(ctx context.Context, event *entity.Event, attendeeIDs []uuid.UUID) error {
	return withTx(ctx, er.conn, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `INSERT INTO events (title, description, start_time, end_time, event_type, location, meeting_link, organizer_id, team_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at;`,
			event.Title,
			event.Description,
			event.StartTime,
			event.EndTime,
			event.EventType,
			event.Location,
			event.MeetingLink,
			event.OrganizerID,
			event.TeamID,
		)
		if err := row.Scan(&event.ID, &event.CreatedAt); err != nil {
			if pgErrCode(err) == pgForeignKeyViolation {
				if event.TeamID != nil {
					return errorvalues.ErrTeamNotFound
				}
				return errorvalues.ErrUserNotFound
			}
			return errors.New("creating event error: " + err.Error())
		}
		return insertAttendees(ctx, tx, event.ID, append([]uuid.UUID{event.OrganizerID}, attendeeIDs...))
	})
}

func (er *EventsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	row := er.conn.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1;`, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEventNotFound
		}
		return nil, errors.New("getting event by id error: " + err.Error())
	}
	return event, nil
}

func (er *EventsRepository) ListForUser(ctx context.Context, uid uuid.UUID, from, to *time.Time) ([]*entity.Event, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+eventColumns+` FROM events WHERE `+eventVisibleTo+`
		AND ($2::timestamptz IS NULL OR start_time >= $2) AND ($3::timestamptz IS NULL OR end_time <= $3)
		ORDER BY start_time;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing events error: " + err.Error())
	}
	return collectEvents(rows)
}

func (er *EventsRepository) ListForUserStartingIn(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.Event, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+eventColumns+` FROM events WHERE `+eventVisibleTo+`
		AND start_time >= $2 AND start_time < $3 ORDER BY start_time;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing events for period error: " + err.Error())
	}
	return collectEvents(rows)
}

func (er *EventsRepository) GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]*entity.Event, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+eventColumns+` FROM events WHERE team_id = $1 ORDER BY start_time;`, teamID)
	if err != nil {
		return nil, errors.New("listing team events error: " + err.Error())
	}
	return collectEvents(rows)
}

func (er *EventsRepository) Update(ctx context.Context, event *entity.Event, attendeeIDs []uuid.UUID) error {
	return withTx(ctx, er.conn, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, `UPDATE events SET title = $1, description = $2, start_time = $3, end_time = $4, event_type = $5,
			location = $6, meeting_link = $7, team_id = $8 WHERE id = $9;`,
			event.Title,
			event.Description,
			event.StartTime,
			event.EndTime,
			event.EventType,
			event.Location,
			event.MeetingLink,
			event.TeamID,
			event.ID,
		)
		if err != nil {
			if pgErrCode(err) == pgForeignKeyViolation {
				return errorvalues.ErrTeamNotFound
			}
			return errors.New("updating event error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrEventNotFound
		}
		if attendeeIDs == nil {
			return nil
		}
		_, err = tx.Exec(ctx, `DELETE FROM event_attendees WHERE event_id = $1 AND user_id <> $2;`, event.ID, event.OrganizerID)
		if err != nil {
			return errors.New("clearing attendees error: " + err.Error())
		}
		return insertAttendees(ctx, tx, event.ID, append([]uuid.UUID{event.OrganizerID}, attendeeIDs...))
	})
}

func (er *EventsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM events WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting event error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEventNotFound
	}
	return nil
}

func (er *EventsRepository) IsAttendee(ctx context.Context, eventID, uid uuid.UUID) (bool, error) {
	var exists bool
	row := er.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM event_attendees WHERE event_id = $1 AND user_id = $2);`, eventID, uid)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting attendance error: " + err.Error())
	}
	return exists, nil
}

func (er *EventsRepository) AddAttendee(ctx context.Context, eventID, uid uuid.UUID) error {
	_, err := er.conn.Exec(ctx, `INSERT INTO event_attendees (event_id, user_id) VALUES ($1, $2);`, eventID, uid)
	if err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return errorvalues.ErrAlreadyAttending
		case pgForeignKeyViolation:
			return errorvalues.ErrEventNotFound
		}
		return errors.New("adding attendee error: " + err.Error())
	}
	return nil
}

func (er *EventsRepository) RemoveAttendee(ctx context.Context, eventID, uid uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM event_attendees WHERE event_id = $1 AND user_id = $2;`, eventID, uid)
	if err != nil {
		return errors.New("removing attendee error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotAttending
	}
	return nil
}

func (er *EventsRepository) ListAttendees(ctx context.Context, eventID uuid.UUID) ([]entity.User, error) {
	rows, err := er.conn.Query(ctx, `SELECT u.id, u.email, u.username, u.full_name, u.avatar, u.is_active, u.current_streak,
		u.longest_streak, u.created_at FROM users u JOIN event_attendees ea ON ea.user_id = u.id
		WHERE ea.event_id = $1 ORDER BY ea.added_at;`, eventID)
	if err != nil {
		return nil, errors.New("listing attendees error: " + err.Error())
	}
	return collectUsers(rows)
}

// insertAttendees adds every existing user from ids, unknown ids and duplicates are ignored.
func insertAttendees(ctx context.Context, tx pgx.Tx, eventID uuid.UUID, ids []uuid.UUID) error {
	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}
	_, err := tx.Exec(ctx, `INSERT INTO event_attendees (event_id, user_id)
		SELECT $1::uuid, id FROM users WHERE id = ANY($2::uuid[]) ON CONFLICT DO NOTHING;`, eventID, strIDs)
	if err != nil {
		return errors.New("adding attendees error: " + err.Error())
	}
	return nil
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var e entity.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime, &e.EventType, &e.Location,
		&e.MeetingLink, &e.OrganizerID, &e.TeamID, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEvents(rows pgx.Rows) ([]*entity.Event, error) {
	defer rows.Close()
	events := make([]*entity.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, errors.New("unmarshalling event error: " + err.Error())
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning events: " + err.Error())
	}
	return events, nil
}
