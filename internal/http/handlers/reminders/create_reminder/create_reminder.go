package createreminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "reemind/internal/core/domain/common"
	ratelimiter "reemind/internal/core/domain/rate_limiter"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/core/services"
	createreminder "reemind/internal/core/services/create_reminder"
	"reemind/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[createreminder.Input, createreminder.Result]
}

func New(
	service services.Service[createreminder.Input, createreminder.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Month    int    `json:"month"`
	Day      int    `json:"day"`
	LeadDays int    `json:"lead_days"`
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
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Month, validation.Required, validation.Min(1), validation.Max(12)),
		validation.Field(&i.Day, validation.Required, validation.Min(1), validation.Max(31)),
		validation.Field(&i.LeadDays, validation.Required, validation.Min(1), validation.Max(365)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		createreminder.Input{
			Email:    c.NewEmail(input.Email),
			Name:     input.Name,
			Month:    input.Month,
			Day:      input.Day,
			LeadDays: reminder.LeadDays(input.LeadDays),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrInvalidOccurrence),
			errors.Is(err, reminder.ErrInvalidLeadDays):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusCreated)
}
