package logout

import (
	"context"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/services"
)

type Input struct {
	Token owner.SessionToken
}

type Result struct{}

type service struct {
	log               logging.Logger
	sessionRepository owner.SessionRepository
}

func New(
	log logging.Logger,
	sessionRepository owner.SessionRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	return &service{log: log, sessionRepository: sessionRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.sessionRepository.Delete(ctx, input.Token); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	s.log.Info(ctx, "Session token has been deleted.")
	return result, nil
}
