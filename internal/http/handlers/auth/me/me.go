package me

import (
	"errors"
	"net/http"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/services"
	getowner "reemind/internal/core/services/get_owner"
	"reemind/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[getowner.Input, getowner.Result]
}

func New(
	service services.Service[getowner.Input, getowner.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Owner response.Owner `json:"owner"`
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

	o := response.Owner{}
	o.FromDomainType(result.Owner)
	response.Render(rw, Result{Owner: o}, http.StatusOK)
}
