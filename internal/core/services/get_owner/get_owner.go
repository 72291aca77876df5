package getowner

import (
	"context"
	"errors"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/services"
	"reemind/internal/core/services/auth"
)

type Input struct {
	Email c.Email
}

func (i Input) WithAuthenticatedEmail(email c.Email) auth.Input {
	i.Email = email
	return i
}

type Result struct {
	Owner owner.Owner
}

type service struct {
	log             logging.Logger
	ownerRepository owner.Repository
}

func New(
	log logging.Logger,
	ownerRepository owner.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if ownerRepository == nil {
		panic(e.NewNilArgumentError("ownerRepository"))
	}
	return &service{log: log, ownerRepository: ownerRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	o, err := s.ownerRepository.GetByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, owner.ErrOwnerDoesNotExist) {
			logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		}
		return result, err
	}
	return Result{Owner: o}, nil
}
