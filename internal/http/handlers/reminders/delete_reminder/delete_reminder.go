package deletereminder

import (
	"errors"
	"net/http"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/core/services"
	deletereminder "reemind/internal/core/services/delete_reminder"
	"reemind/internal/http/handlers/response"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deletereminder.Input, deletereminder.Result]
}

func New(
	service services.Service[deletereminder.Input, deletereminder.Result],
) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	reminderID, err := strconv.ParseInt(chi.URLParam(r, "reminderID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid reminder ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(
		r.Context(),
		deletereminder.Input{ReminderID: reminder.ID(reminderID)},
	)
	if err != nil {
		switch {
		case errors.Is(err, owner.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, reminder.ErrReminderDoesNotExist),
			errors.Is(err, reminder.ErrReminderPermission):
			response.RenderNotFound(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
