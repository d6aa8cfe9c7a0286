package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/httputil"
)

type CreateGoalRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	TargetValue float64    `json:"target_value"`
	Unit        string     `json:"unit"`
	TargetDate  *time.Time `json:"target_date"`
	IsRecurring bool       `json:"is_recurring"`
	Frequency   *string    `json:"frequency"`
	TeamID      *uuid.UUID `json:"team_id"`
}

type UpdateGoalRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Unit        *string    `json:"unit"`
	TargetDate  *time.Time `json:"target_date"`
	IsRecurring *bool      `json:"is_recurring"`
	Frequency   *string    `json:"frequency"`
}

type RecordProgressRequest struct {
	Value *float64 `json:"value"`
	Notes *string  `json:"notes"`
}

var errMissingValue = errors.New("value is required")

// ListGoals godoc
// @Summary List own goals
// @Tags goals
// @Produce json
// @Success 200 {array} entity.Goal
// @Security BearerAuth
// @Router /goals [get]
func (s *Server) ListGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	goals, err := s.goalsService.ListGoals(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goals)
}

// CreateGoal godoc
// @Summary Create goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body CreateGoalRequest true "goal"
// @Success 201 {object} entity.Goal
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /goals [post]
func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateGoalRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create goal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, uid, service.CreateGoalRequest{
		Title:       req.Title,
		Description: req.Description,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		TargetDate:  req.TargetDate,
		IsRecurring: req.IsRecurring,
		Frequency:   req.Frequency,
		TeamID:      req.TeamID,
	})
	if err != nil {
		writeServiceError(w, logger, "create goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created", slog.String("goal_id", goal.ID.String()))
}

// GetGoal godoc
// @Summary Get own goal with its progress log
// @Tags goals
// @Produce json
// @Param id path string true "goal id"
// @Success 200 {object} entity.GoalWithProgress
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /goals/{id} [get]
func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	goalID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("get goal error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	goal, err := s.goalsService.GetGoal(ctx, goalID, uid)
	if err != nil {
		writeServiceError(w, logger, "get goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
}

// UpdateGoal godoc
// @Summary Update goal's descriptive fields
// @Description Progress, target and completion are not changed here
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "goal id"
// @Param goal body UpdateGoalRequest true "fields to change"
// @Success 200 {object} entity.Goal
// @Security BearerAuth
// @Router /goals/{id} [put]
func (s *Server) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	goalID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("update goal error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id", nil)
		return
	}
	var req UpdateGoalRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("update goal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	goal, err := s.goalsService.UpdateGoal(ctx, goalID, uid, service.UpdateGoalRequest{
		Title:       req.Title,
		Description: req.Description,
		Unit:        req.Unit,
		TargetDate:  req.TargetDate,
		IsRecurring: req.IsRecurring,
		Frequency:   req.Frequency,
	})
	if err != nil {
		writeServiceError(w, logger, "update goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
}

// DeleteGoal godoc
// @Summary Delete own goal with its progress log
// @Tags goals
// @Param id path string true "goal id"
// @Success 204
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	goalID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("delete goal error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.goalsService.DeleteGoal(ctx, goalID, uid); err != nil {
		writeServiceError(w, logger, "delete goal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("goal deleted", slog.String("goal_id", goalID.String()))
}

// RecordProgress godoc
// @Summary Log progress towards a goal
// @Description Adds value to goal's current value. Reaching the target completes the goal
// @Description and extends owner's streak, once per goal.
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "goal id"
// @Param progress body RecordProgressRequest true "progress delta"
// @Success 200 {object} entity.GoalProgress
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /goals/{id}/progress [post]
func (s *Server) RecordProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("record progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	goalID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("record progress error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id", nil)
		return
	}
	var req RecordProgressRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("record progress error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Value == nil {
		logger.Error("record progress error: no value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", errMissingValue)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	entry, err := s.progressService.RecordProgress(ctx, goalID, uid, *req.Value, req.Notes)
	if err != nil {
		writeServiceError(w, logger, "record progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("progress recorded", slog.String("goal_id", goalID.String()), slog.Float64("value", *req.Value))
}

// GetProgress godoc
// @Summary Progress log of a goal
// @Tags goals
// @Produce json
// @Param id path string true "goal id"
// @Success 200 {array} entity.GoalProgress
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /goals/{id}/progress [get]
func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	goalID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("get progress error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	entries, err := s.progressService.GetProgress(ctx, goalID, uid)
	if err != nil {
		writeServiceError(w, logger, "get progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
}

// ListTeamGoals godoc
// @Summary Goals attached to a team
// @Tags teams
// @Produce json
// @Param id path string true "team id"
// @Success 200 {array} entity.Goal
// @Failure 403 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/goals [get]
func (s *Server) ListTeamGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list team goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	teamID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("list team goals error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid team id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	goals, err := s.goalsService.ListTeamGoals(ctx, teamID, uid)
	if err != nil {
		writeServiceError(w, logger, "list team goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goals)
}
