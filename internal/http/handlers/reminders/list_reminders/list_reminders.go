package listreminders

import (
	"errors"
	"net/http"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/services"
	listreminders "reemind/internal/core/services/list_reminders"
	"reemind/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listreminders.Input, listreminders.Result]
}

func New(
	service services.Service[listreminders.Input, listreminders.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Reminders []response.ReminderWithDaysLeft `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listreminders.Input{})
	if err != nil {
		switch {
		case errors.Is(err, owner.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	reminders := make([]response.ReminderWithDaysLeft, 0, len(result.Reminders))
	for ix, rem := range result.Reminders {
		item := response.ReminderWithDaysLeft{DaysLeft: result.DaysLeft[ix]}
		item.FromDomainType(rem)
		reminders = append(reminders, item)
	}
	response.Render(rw, Result{Reminders: reminders}, http.StatusOK)
}
