package updatereminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/core/services"
	updatereminder "reemind/internal/core/services/update_reminder"
	"reemind/internal/http/handlers/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[updatereminder.Input, updatereminder.Result]
}

func New(
	service services.Service[updatereminder.Input, updatereminder.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Name     *string `json:"name"`
	Month    *int    `json:"month"`
	Day      *int    `json:"day"`
	LeadDays *int    `json:"lead_days"`
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Length(1, 256)),
		validation.Field(&i.Month, validation.Min(1), validation.Max(12)),
		validation.Field(&i.Day, validation.Min(1), validation.Max(31)),
		validation.Field(&i.LeadDays, validation.Min(1), validation.Max(365)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	reminderID, err := strconv.ParseInt(chi.URLParam(r, "reminderID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid reminder ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}
	// Month and day change together.
	if (input.Month == nil) != (input.Day == nil) {
		response.RenderError(rw, "month and day must be provided together", http.StatusBadRequest)
		return
	}

	serviceInput := updatereminder.Input{ReminderID: reminder.ID(reminderID)}
	if input.Name != nil {
		serviceInput.DoNameUpdate = true
		serviceInput.Name = *input.Name
	}
	if input.Month != nil && input.Day != nil {
		serviceInput.DoOccurrenceUpdate = true
		serviceInput.Month = *input.Month
		serviceInput.Day = *input.Day
	}
	if input.LeadDays != nil {
		serviceInput.DoLeadDaysUpdate = true
		serviceInput.LeadDays = reminder.LeadDays(*input.LeadDays)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, owner.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, reminder.ErrReminderDoesNotExist),
			errors.Is(err, reminder.ErrReminderPermission):
			response.RenderNotFound(rw)
		case errors.Is(err, reminder.ErrInvalidOccurrence),
			errors.Is(err, reminder.ErrInvalidLeadDays):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusOK)
}
