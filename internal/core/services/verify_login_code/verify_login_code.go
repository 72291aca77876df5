package verifylogincode

import (
	"context"
	"errors"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
	Code  owner.LoginCode
}

func (i Input) GetRateLimitKey() string {
	return "verify-login-code::" + string(i.Email)
}

type Result struct {
	Owner owner.Owner
	Token owner.SessionToken
}

type service struct {
	log                   logging.Logger
	loginCodeRepository   owner.LoginCodeRepository
	ownerRepository       owner.Repository
	sessionRepository     owner.SessionRepository
	sessionTokenGenerator owner.SessionTokenGenerator
	sessionValidFor       time.Duration
	now                   func() time.Time
}

func New(
	log logging.Logger,
	loginCodeRepository owner.LoginCodeRepository,
	ownerRepository owner.Repository,
	sessionRepository owner.SessionRepository,
	sessionTokenGenerator owner.SessionTokenGenerator,
	sessionValidFor time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if loginCodeRepository == nil {
		panic(e.NewNilArgumentError("loginCodeRepository"))
	}
	if ownerRepository == nil {
		panic(e.NewNilArgumentError("ownerRepository"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if sessionTokenGenerator == nil {
		panic(e.NewNilArgumentError("sessionTokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                   log,
		loginCodeRepository:   loginCodeRepository,
		ownerRepository:       ownerRepository,
		sessionRepository:     sessionRepository,
		sessionTokenGenerator: sessionTokenGenerator,
		sessionValidFor:       sessionValidFor,
		now:                   now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.loginCodeRepository.Consume(ctx, input.Email, input.Code); err != nil {
		if errors.Is(err, owner.ErrLoginCodeInvalid) {
			s.log.Info(ctx, "Invalid login code.", logging.Entry("email", input.Email))
		} else {
			logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		}
		return result, err
	}

	o, err := s.ownerRepository.Upsert(ctx, owner.UpsertInput{
		Email: input.Email,
		Now:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	sessionToken := s.sessionTokenGenerator.GenerateSessionToken()
	if err := s.sessionRepository.Create(ctx, sessionToken, o.Email, s.sessionValidFor); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("ownerId", o.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Owner successfully authenticated, session token created.",
		logging.Entry("ownerId", o.ID),
	)
	return Result{Owner: o, Token: sessionToken}, nil
}
