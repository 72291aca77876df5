package runsweep

import (
	"crypto/subtle"
	"net/http"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/core/services"
	runsweep "reemind/internal/core/services/run_sweep"
	"reemind/internal/http/handlers/response"
	"strings"
	"time"
)

const tokenPrefix = "Bearer "

// Handler triggers a notification sweep. The endpoint is meant for an
// external cron caller and is guarded by a shared secret instead of a
// session.
type Handler struct {
	service services.Service[runsweep.Input, runsweep.Result]
	secret  string
	now     func() time.Time
}

func New(
	service services.Service[runsweep.Input, runsweep.Result],
	secret string,
	now func() time.Time,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if secret == "" {
		panic("sweep secret must not be empty")
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Handler{service: service, secret: secret, now: now}
}

type Result struct {
	Success bool `json:"success"`
	reminder.SweepSummary
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		response.RenderUnauthorized(rw)
		return
	}

	result, err := h.service.Run(r.Context(), runsweep.Input{At: h.now()})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{Success: true, SweepSummary: result.Summary}, http.StatusOK)
}

func (h *Handler) authorized(r *http.Request) bool {
	header := r.Header.Get("authorization")
	if !strings.HasPrefix(header, tokenPrefix) {
		return false
	}
	token := strings.TrimPrefix(header, tokenPrefix)
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
