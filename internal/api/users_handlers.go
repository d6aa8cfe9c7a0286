package api

import (
	"log/slog"
	"net/http"

	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/httputil"
)

type CreateUserRequest struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	FullName *string `json:"full_name"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	FullName *string `json:"full_name"`
	Avatar   *string `json:"avatar"`
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "profile"
// @Success 201 {object} entity.User
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /users [post]
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateUserRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create user error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.CreateUser(ctx, &service.CreateUserRequest{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
	})
	if err != nil {
		writeServiceError(w, logger, "create user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, user)
	logger.Info("user created", slog.String("uid", user.ID.String()))
}

// GetMe godoc
// @Summary Current user's profile
// @Tags users
// @Produce json
// @Success 200 {object} entity.User
// @Security BearerAuth
// @Router /users/me [get]
func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update current user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param user body UpdateUserRequest true "fields to change"
// @Success 200 {object} entity.User
// @Security BearerAuth
// @Router /users/me [put]
func (s *Server) UpdateMe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateUserRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("update profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, uid, &service.UpdateUserRequest{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Avatar:   req.Avatar,
	})
	if err != nil {
		writeServiceError(w, logger, "update profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("profile updated")
}

// GetUser godoc
// @Summary User profile by id
// @Tags users
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} entity.User
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("get user error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.GetByID(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

// GetUsersWithTeams godoc
// @Summary Every user with the teams they belong to
// @Tags users
// @Produce json
// @Success 200 {array} entity.UserWithTeams
// @Security BearerAuth
// @Router /users/with-teams [get]
func (s *Server) GetUsersWithTeams(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	users, err := s.teamsService.ListUsersWithTeams(ctx)
	if err != nil {
		writeServiceError(w, logger, "list users with teams", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, users)
}
