package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/entity"
)

const teamColumns = `id, name, description, created_by_id, cycle_name, cycle_start_date, cycle_end_date, created_at`

type TeamsRepository struct {
	conn PgConnection
}

func NewTeamsRepoWithConn(conn PgConnection) *TeamsRepository {
	return &TeamsRepository{
		conn: conn,
	}
}

func (tr *TeamsRepository) Create(ctx context.Context, team *entity.Team) error {
	return withTx(ctx, tr.conn, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `INSERT INTO teams (name, description, created_by_id, cycle_name, cycle_start_date, cycle_end_date)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
			team.Name,
			team.Description,
			team.CreatedByID,
			team.CycleName,
			team.CycleStartDate,
			team.CycleEndDate,
		)
		if err := row.Scan(&team.ID, &team.CreatedAt); err != nil {
			if pgErrCode(err) == pgForeignKeyViolation {
				return errorvalues.ErrUserNotFound
			}
			return errors.New("creating team error: " + err.Error())
		}
		_, err := tx.Exec(ctx, `INSERT INTO team_members (team_id, user_id) VALUES ($1, $2);`, team.ID, team.CreatedByID)
		if err != nil {
			return errors.New("adding team creator error: " + err.Error())
		}
		return nil
	})
}

func (tr *TeamsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	row := tr.conn.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1;`, id)
	team, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTeamNotFound
		}
		return nil, errors.New("getting team by id error: " + err.Error())
	}
	return team, nil
}

func (tr *TeamsRepository) GetByMember(ctx context.Context, uid uuid.UUID) ([]*entity.Team, error) {
	rows, err := tr.conn.Query(ctx, `SELECT `+teamColumns+` FROM teams
		WHERE id IN (SELECT team_id FROM team_members WHERE user_id = $1) ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting teams by member error: " + err.Error())
	}
	defer rows.Close()
	teams := make([]*entity.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, errors.New("unmarshalling team error: " + err.Error())
		}
		teams = append(teams, team)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning teams: " + err.Error())
	}
	return teams, nil
}

func (tr *TeamsRepository) Update(ctx context.Context, team *entity.Team) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE teams SET name = $1, description = $2, cycle_name = $3, cycle_start_date = $4,
		cycle_end_date = $5 WHERE id = $6;`,
		team.Name,
		team.Description,
		team.CycleName,
		team.CycleStartDate,
		team.CycleEndDate,
		team.ID,
	)
	if err != nil {
		return errors.New("updating team error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTeamNotFound
	}
	return nil
}

func (tr *TeamsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM teams WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting team error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTeamNotFound
	}
	return nil
}

func (tr *TeamsRepository) IsMember(ctx context.Context, teamID, uid uuid.UUID) (bool, error) {
	var exists bool
	row := tr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2);`, teamID, uid)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting team membership error: " + err.Error())
	}
	return exists, nil
}

func (tr *TeamsRepository) AddMember(ctx context.Context, teamID, uid uuid.UUID) error {
	_, err := tr.conn.Exec(ctx, `INSERT INTO team_members (team_id, user_id) VALUES ($1, $2);`, teamID, uid)
	if err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return errorvalues.ErrAlreadyMember
		case pgForeignKeyViolation:
			return errorvalues.ErrUserNotFound
		}
		return errors.New("adding team member error: " + err.Error())
	}
	return nil
}

func (tr *TeamsRepository) RemoveMember(ctx context.Context, teamID, uid uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2;`, teamID, uid)
	if err != nil {
		return errors.New("removing team member error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTargetNotMember
	}
	return nil
}

func (tr *TeamsRepository) ListMembers(ctx context.Context, teamID uuid.UUID) ([]entity.User, error) {
	rows, err := tr.conn.Query(ctx, `SELECT u.id, u.email, u.username, u.full_name, u.avatar, u.is_active, u.current_streak,
		u.longest_streak, u.created_at FROM users u JOIN team_members tm ON tm.user_id = u.id
		WHERE tm.team_id = $1 ORDER BY tm.joined_at;`, teamID)
	if err != nil {
		return nil, errors.New("listing team members error: " + err.Error())
	}
	return collectUsers(rows)
}

// ListByMembers groups teams by member. Users without teams are absent from the result.
func (tr *TeamsRepository) ListByMembers(ctx context.Context, uids []uuid.UUID) (map[uuid.UUID][]entity.Team, error) {
	ids := make([]string, 0, len(uids))
	for _, uid := range uids {
		ids = append(ids, uid.String())
	}
	rows, err := tr.conn.Query(ctx, `SELECT tm.user_id, t.id, t.name, t.description, t.created_by_id, t.cycle_name, t.cycle_start_date,
		t.cycle_end_date, t.created_at FROM team_members tm JOIN teams t ON t.id = tm.team_id
		WHERE tm.user_id = ANY($1::uuid[]) ORDER BY tm.joined_at;`, ids)
	if err != nil {
		return nil, errors.New("listing teams by members error: " + err.Error())
	}
	defer rows.Close()
	teams := make(map[uuid.UUID][]entity.Team)
	for rows.Next() {
		var uid uuid.UUID
		var t entity.Team
		err = rows.Scan(&uid, &t.ID, &t.Name, &t.Description, &t.CreatedByID, &t.CycleName, &t.CycleStartDate, &t.CycleEndDate, &t.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling membership error: " + err.Error())
		}
		teams[uid] = append(teams[uid], t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning memberships: " + err.Error())
	}
	return teams, nil
}

func scanTeam(row pgx.Row) (*entity.Team, error) {
	var t entity.Team
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedByID, &t.CycleName, &t.CycleStartDate, &t.CycleEndDate, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
