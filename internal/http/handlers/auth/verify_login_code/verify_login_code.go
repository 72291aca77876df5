package verifylogincode

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "reemind/internal/core/domain/common"
	"reemind/internal/core/domain/owner"
	ratelimiter "reemind/internal/core/domain/rate_limiter"
	"reemind/internal/core/services"
	verifylogincode "reemind/internal/core/services/verify_login_code"
	"reemind/internal/http/handlers/auth"
	"reemind/internal/http/handlers/response"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service         services.Service[verifylogincode.Input, verifylogincode.Result]
	sessionValidFor time.Duration
}

func New(
	service services.Service[verifylogincode.Input, verifylogincode.Result],
	sessionValidFor time.Duration,
) *Handler {
	return &Handler{service: service, sessionValidFor: sessionValidFor}
}

type Input struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type Result struct {
	Owner response.Owner `json:"owner"`
	Token string         `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Code, validation.Required, validation.Length(6, 6), is.Digit),
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
		verifylogincode.Input{
			Email: c.NewEmail(input.Email),
			Code:  owner.LoginCode(input.Code),
		},
	)
	if errors.Is(err, owner.ErrLoginCodeInvalid) {
		response.RenderError(rw, "invalid or expired login code", http.StatusUnauthorized)
		return
	}
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	auth.SetSessionCookie(rw, result.Token, h.sessionValidFor)
	o := response.Owner{}
	o.FromDomainType(result.Owner)
	response.Render(rw, Result{Owner: o, Token: string(result.Token)}, http.StatusOK)
}
