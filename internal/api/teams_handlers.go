package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/httputil"
)

type CreateTeamRequest struct {
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	CycleName      *string    `json:"cycle_name"`
	CycleStartDate *time.Time `json:"cycle_start_date"`
	CycleEndDate   *time.Time `json:"cycle_end_date"`
}

type UpdateTeamRequest struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	CycleName      *string    `json:"cycle_name"`
	CycleStartDate *time.Time `json:"cycle_start_date"`
	CycleEndDate   *time.Time `json:"cycle_end_date"`
}

// ListTeams godoc
// @Summary Teams the user belongs to
// @Tags teams
// @Produce json
// @Success 200 {array} entity.Team
// @Security BearerAuth
// @Router /teams [get]
func (s *Server) ListTeams(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list teams error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	teams, err := s.teamsService.ListMyTeams(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list teams", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, teams)
}

// CreateTeam godoc
// @Summary Create team
// @Description Creator becomes the first member
// @Tags teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "team"
// @Success 201 {object} entity.Team
// @Security BearerAuth
// @Router /teams [post]
func (s *Server) CreateTeam(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create team error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateTeamRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create team error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	team, err := s.teamsService.CreateTeam(ctx, uid, service.CreateTeamRequest{
		Name:           req.Name,
		Description:    req.Description,
		CycleName:      req.CycleName,
		CycleStartDate: req.CycleStartDate,
		CycleEndDate:   req.CycleEndDate,
	})
	if err != nil {
		writeServiceError(w, logger, "create team", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, team)
	logger.Info("team created", slog.String("team_id", team.ID.String()))
}

// GetTeam godoc
// @Summary Team with members, goals and events
// @Tags teams
// @Produce json
// @Param id path string true "team id"
// @Success 200 {object} entity.TeamComplete
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [get]
func (s *Server) GetTeam(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get team error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	teamID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("get team error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid team id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	team, err := s.teamsService.GetTeam(ctx, teamID, uid)
	if err != nil {
		writeServiceError(w, logger, "get team", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, team)
}

// UpdateTeam godoc
// @Summary Update team, creator only
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "team id"
// @Param team body UpdateTeamRequest true "fields to change"
// @Success 200 {object} entity.Team
// @Failure 403 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [put]
func (s *Server) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update team error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	teamID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("update team error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid team id", nil)
		return
	}
	var req UpdateTeamRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("update team error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	team, err := s.teamsService.UpdateTeam(ctx, teamID, uid, service.UpdateTeamRequest{
		Name:           req.Name,
		Description:    req.Description,
		CycleName:      req.CycleName,
		CycleStartDate: req.CycleStartDate,
		CycleEndDate:   req.CycleEndDate,
	})
	if err != nil {
		writeServiceError(w, logger, "update team", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, team)
}

// DeleteTeam godoc
// @Summary Delete team, creator only
// @Tags teams
// @Param id path string true "team id"
// @Success 204
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (s *Server) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete team error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	teamID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("delete team error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid team id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.teamsService.DeleteTeam(ctx, teamID, uid); err != nil {
		writeServiceError(w, logger, "delete team", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("team deleted", slog.String("team_id", teamID.String()))
}

// ListTeamMembers godoc
// @Summary Members of a team
// @Tags teams
// @Produce json
// @Param id path string true "team id"
// @Success 200 {array} entity.User
// @Security BearerAuth
// @Router /teams/{id}/members [get]
func (s *Server) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list members error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	teamID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("list members error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid team id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	members, err := s.teamsService.ListMembers(ctx, teamID, uid)
	if err != nil {
		writeServiceError(w, logger, "list members", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, members)
}

// AddTeamMember godoc
// @Summary Add user to team
// @Tags teams
// @Param id path string true "team id"
// @Param user_id path string true "user id"
// @Success 201 {object} entity.TeamWithMembers
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/members/{user_id} [post]
func (s *Server) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add member error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	teamID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("add member error: invalid team id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid team id", nil)
		return
	}
	memberID, err := pathUUID(r, "user_id")
	if err != nil {
		logger.Error("add member error: invalid user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	team, err := s.teamsService.AddMember(ctx, teamID, uid, memberID)
	if err != nil {
		writeServiceError(w, logger, "add member", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, team)
	logger.Info("member added", slog.String("team_id", teamID.String()), slog.String("member", memberID.String()))
}

// RemoveTeamMember godoc
// @Summary Remove member, creator only
// @Tags teams
// @Produce json
// @Param id path string true "team id"
// @Param user_id path string true "user id"
// @Success 200 {object} entity.TeamWithMembers
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/members/{user_id} [delete]
func (s *Server) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("remove member error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	teamID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("remove member error: invalid team id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid team id", nil)
		return
	}
	memberID, err := pathUUID(r, "user_id")
	if err != nil {
		logger.Error("remove member error: invalid user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	team, err := s.teamsService.RemoveMember(ctx, teamID, uid, memberID)
	if err != nil {
		writeServiceError(w, logger, "remove member", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, team)
	logger.Info("member removed", slog.String("team_id", teamID.String()), slog.String("member", memberID.String()))
}

// ListTeamEvents godoc
// @Summary Events of the team
// @Tags teams
// @Produce json
// @Param id path string true "team id"
// @Success 200 {array} entity.Event
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/events [get]
func (s *Server) ListTeamEvents(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list team events error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	teamID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("list team events error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid team id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	events, err := s.teamsService.ListTeamEvents(ctx, teamID, uid)
	if err != nil {
		writeServiceError(w, logger, "list team events", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, events)
}
