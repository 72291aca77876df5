package auth

import (
	"context"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

type Input interface {
	WithAuthenticatedEmail(email c.Email) Input
}

type service[T Input, S any] struct {
	sessionRepository owner.SessionRepository
	inner             services.Service[T, S]
}

// WithAuthentication resolves the session token from the request context to
// the owner's email and injects it into the inner service's input.
func WithAuthentication[T Input, S any](
	sessionRepository owner.SessionRepository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		sessionRepository: sessionRepository,
		inner:             inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(owner.SessionToken)
	if !ok {
		return result, owner.ErrSessionDoesNotExist
	}
	email, err := s.sessionRepository.GetEmailByToken(ctx, authToken)
	if err != nil {
		return result, err
	}
	return s.inner.Run(ctx, input.WithAuthenticatedEmail(email).(T))
}
