package events

import (
	"errors"
	"net/http"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/services"
	getowner "reemind/internal/core/services/get_owner"
	sweepevents "reemind/internal/implementations/sweep_events"
	"reemind/internal/http/handlers/response"

	"github.com/r3labs/sse/v2"
)

// Handler streams per-record sweep outcomes to an authenticated dashboard.
type Handler struct {
	log       logging.Logger
	service   services.Service[getowner.Input, getowner.Result]
	sseServer *sse.Server
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
	service services.Service[getowner.Input, getowner.Result],
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{log: log, sseServer: sseServer, service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), getowner.Input{})
	if err != nil {
		switch {
		case errors.Is(err, owner.ErrOwnerDoesNotExist),
			errors.Is(err, owner.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	streamID := r.URL.Query().Get("stream")
	if streamID != sweepevents.StreamID {
		response.RenderError(rw, "invalid stream", http.StatusBadRequest)
		return
	}

	h.log.Info(
		r.Context(),
		"Subscribed to sweep events.",
		logging.Entry("ownerID", result.Owner.ID),
	)
	h.sseServer.ServeHTTP(rw, r)
}
