package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/httputil"
)

var errorStatuses = []struct {
	err  error
	code int
}{
	{errorvalues.ErrValidation, http.StatusBadRequest},
	{errorvalues.ErrAlreadyMember, http.StatusBadRequest},
	{errorvalues.ErrTargetNotMember, http.StatusBadRequest},
	{errorvalues.ErrCannotRemoveCreator, http.StatusBadRequest},
	{errorvalues.ErrAlreadyAttending, http.StatusBadRequest},
	{errorvalues.ErrNotAttending, http.StatusBadRequest},
	{errorvalues.ErrOrganizerCannotLeave, http.StatusBadRequest},
	{errorvalues.ErrInvalidToken, http.StatusUnauthorized},
	{errorvalues.ErrForbidden, http.StatusForbidden},
	{errorvalues.ErrNotTeamMember, http.StatusForbidden},
	{errorvalues.ErrGoalNotFound, http.StatusNotFound},
	{errorvalues.ErrUserNotFound, http.StatusNotFound},
	{errorvalues.ErrTeamNotFound, http.StatusNotFound},
	{errorvalues.ErrEventNotFound, http.StatusNotFound},
	{errorvalues.ErrUserExists, http.StatusConflict},
}

// writeServiceError maps domain errors to client responses. Anything unknown is a 500
// and its text is only logged.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			logger.Error(op+" error", slog.String("error", err.Error()))
			var details error
			if es.err == errorvalues.ErrValidation {
				details = err
			}
			httputil.WriteErrorResponse(w, es.code, es.err.Error(), details)
			return
		}
	}
	logger.Error(op+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while processing "+op, nil)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(name))
}
