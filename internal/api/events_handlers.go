package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/entity"
	"github.com/limbo/goalkeeper/pkg/httputil"
)

const dateLayout = "2006-01-02"

type CreateEventRequest struct {
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	StartTime   time.Time   `json:"start_time"`
	EndTime     time.Time   `json:"end_time"`
	EventType   string      `json:"event_type"`
	Location    *string     `json:"location"`
	MeetingLink *string     `json:"meeting_link"`
	TeamID      *uuid.UUID  `json:"team_id"`
	AttendeeIDs []uuid.UUID `json:"attendee_ids"`
}

type UpdateEventRequest struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	StartTime   *time.Time  `json:"start_time"`
	EndTime     *time.Time  `json:"end_time"`
	EventType   *string     `json:"event_type"`
	Location    *string     `json:"location"`
	MeetingLink *string     `json:"meeting_link"`
	TeamID      *uuid.UUID  `json:"team_id"`
	AttendeeIDs []uuid.UUID `json:"attendee_ids"`
}

var errBadQuery = errors.New("invalid query parameter")

// optionalTime parses an RFC3339 query parameter, returning nil when it is absent.
func optionalTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errors.Join(errBadQuery, errors.New(name+": "+err.Error()))
	}
	return &t, nil
}

// dateParam accepts either a plain date or an RFC3339 timestamp. Missing means now.
func dateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.Join(errBadQuery, errors.New(name+": "+err.Error()))
	}
	return t, nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Join(errBadQuery, errors.New(name+": "+err.Error()))
	}
	return v, nil
}

// ListEvents godoc
// @Summary Events organized or attended by user
// @Tags events
// @Produce json
// @Param start query string false "RFC3339 lower bound on start time"
// @Param end query string false "RFC3339 upper bound on end time"
// @Success 200 {array} entity.Event
// @Failure 400 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /events [get]
func (s *Server) ListEvents(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list events error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, err := optionalTime(r, "start")
	if err != nil {
		logger.Error("list events error: invalid start")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid start parameter", err)
		return
	}
	to, err := optionalTime(r, "end")
	if err != nil {
		logger.Error("list events error: invalid end")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid end parameter", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	events, err := s.eventsService.ListEvents(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "list events", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create event
// @Description Organizer is always an attendee. Unknown attendee ids are skipped
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "event"
// @Success 201 {object} entity.EventWithAttendees
// @Failure 400 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create event error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateEventRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create event error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	event, err := s.eventsService.CreateEvent(ctx, uid, service.CreateEventRequest{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		EventType:   req.EventType,
		Location:    req.Location,
		MeetingLink: req.MeetingLink,
		TeamID:      req.TeamID,
		AttendeeIDs: req.AttendeeIDs,
	})
	if err != nil {
		writeServiceError(w, logger, "create event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, event)
	logger.Info("event created", slog.String("event_id", event.ID.String()))
}

// CalendarDay godoc
// @Summary Events starting on a day
// @Tags events
// @Produce json
// @Param date query string false "YYYY-MM-DD or RFC3339, defaults to today"
// @Success 200 {array} entity.Event
// @Failure 400 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /events/calendar/day [get]
func (s *Server) CalendarDay(w http.ResponseWriter, r *http.Request) {
	s.calendar(w, r, "calendar day", func(r *http.Request, uid uuid.UUID) ([]*entity.Event, error) {
		date, err := dateParam(r, "date")
		if err != nil {
			return nil, err
		}
		ctx, cancel := s.requestContext(r)
		defer cancel()
		return s.eventsService.EventsForDay(ctx, uid, date)
	})
}

// CalendarWeek godoc
// @Summary Events starting in the Monday based week of a date
// @Tags events
// @Produce json
// @Param date query string false "YYYY-MM-DD or RFC3339, defaults to today"
// @Success 200 {array} entity.Event
// @Failure 400 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /events/calendar/week [get]
func (s *Server) CalendarWeek(w http.ResponseWriter, r *http.Request) {
	s.calendar(w, r, "calendar week", func(r *http.Request, uid uuid.UUID) ([]*entity.Event, error) {
		date, err := dateParam(r, "date")
		if err != nil {
			return nil, err
		}
		ctx, cancel := s.requestContext(r)
		defer cancel()
		return s.eventsService.EventsForWeek(ctx, uid, date)
	})
}

// CalendarMonth godoc
// @Summary Events of a month
// @Tags events
// @Produce json
// @Param year query int false "defaults to current year"
// @Param month query int false "1-12, defaults to current month"
// @Success 200 {array} entity.Event
// @Security BearerAuth
// @Router /events/calendar/month [get]
func (s *Server) CalendarMonth(w http.ResponseWriter, r *http.Request) {
	s.calendar(w, r, "calendar month", func(r *http.Request, uid uuid.UUID) ([]*entity.Event, error) {
		now := time.Now().UTC()
		year, err := intParam(r, "year", now.Year())
		if err != nil {
			return nil, err
		}
		month, err := intParam(r, "month", int(now.Month()))
		if err != nil {
			return nil, err
		}
		ctx, cancel := s.requestContext(r)
		defer cancel()
		return s.eventsService.EventsForMonth(ctx, uid, year, time.Month(month), time.UTC)
	})
}

func (s *Server) calendar(w http.ResponseWriter, r *http.Request, op string,
	load func(r *http.Request, uid uuid.UUID) ([]*entity.Event, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	events, err := load(r, uid)
	if err != nil {
		if errors.Is(err, errBadQuery) {
			logger.Error(op+" error: invalid query", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query parameters", err)
			return
		}
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Event with attendees
// @Tags events
// @Produce json
// @Param id path string true "event id"
// @Success 200 {object} entity.EventWithAttendees
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [get]
func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get event error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	eventID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("get event error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid event id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	event, err := s.eventsService.GetEvent(ctx, eventID, uid)
	if err != nil {
		writeServiceError(w, logger, "get event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update event, organizer only
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "event id"
// @Param event body UpdateEventRequest true "fields to change"
// @Success 200 {object} entity.EventWithAttendees
// @Security BearerAuth
// @Router /events/{id} [put]
func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update event error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	eventID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("update event error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid event id", nil)
		return
	}
	var req UpdateEventRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("update event error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	event, err := s.eventsService.UpdateEvent(ctx, eventID, uid, service.UpdateEventRequest{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		EventType:   req.EventType,
		Location:    req.Location,
		MeetingLink: req.MeetingLink,
		TeamID:      req.TeamID,
		AttendeeIDs: req.AttendeeIDs,
	})
	if err != nil {
		writeServiceError(w, logger, "update event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete event, organizer only
// @Tags events
// @Param id path string true "event id"
// @Success 204
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete event error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	eventID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("delete event error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid event id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.eventsService.DeleteEvent(ctx, eventID, uid); err != nil {
		writeServiceError(w, logger, "delete event", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("event deleted", slog.String("event_id", eventID.String()))
}

// AttendEvent godoc
// @Summary Join event as attendee
// @Tags events
// @Produce json
// @Param id path string true "event id"
// @Success 200 {object} entity.EventWithAttendees
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/attend [post]
func (s *Server) AttendEvent(w http.ResponseWriter, r *http.Request) {
	s.attendance(w, r, "attend event", s.eventsService.Attend)
}

// CancelAttendance godoc
// @Summary Leave event
// @Tags events
// @Produce json
// @Param id path string true "event id"
// @Success 200 {object} entity.EventWithAttendees
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/cancel-attendance [post]
func (s *Server) CancelAttendance(w http.ResponseWriter, r *http.Request) {
	s.attendance(w, r, "cancel attendance", s.eventsService.CancelAttendance)
}

func (s *Server) attendance(w http.ResponseWriter, r *http.Request, op string,
	change func(ctx context.Context, eventID, userID uuid.UUID) (*entity.EventWithAttendees, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	eventID, err := pathUUID(r, "id")
	if err != nil {
		logger.Error(op + " error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid event id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	event, err := change(ctx, eventID, uid)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, event)
	logger.Info(op, slog.String("event_id", eventID.String()))
}
