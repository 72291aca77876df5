package logout

import (
	"errors"
	"net/http"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/services"
	logout "reemind/internal/core/services/log_out"
	"reemind/internal/http/handlers/auth"
	"reemind/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[logout.Input, logout.Result]
}

func New(
	service services.Service[logout.Input, logout.Result],
) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}
	_, err := h.service.Run(
		r.Context(),
		logout.Input{Token: token},
	)
	if errors.Is(err, owner.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	auth.ClearSessionCookie(rw)
	response.Render(rw, struct{}{}, http.StatusOK)
}
