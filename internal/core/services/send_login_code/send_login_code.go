package sendlogincode

import (
	"context"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "send-login-code::" + string(i.Email)
}

type Result struct{}

type service struct {
	log                 logging.Logger
	loginCodeGenerator  owner.LoginCodeGenerator
	loginCodeRepository owner.LoginCodeRepository
	loginCodeSender     owner.LoginCodeSender
	codeValidFor        time.Duration
}

func New(
	log logging.Logger,
	loginCodeGenerator owner.LoginCodeGenerator,
	loginCodeRepository owner.LoginCodeRepository,
	loginCodeSender owner.LoginCodeSender,
	codeValidFor time.Duration,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if loginCodeGenerator == nil {
		panic(e.NewNilArgumentError("loginCodeGenerator"))
	}
	if loginCodeRepository == nil {
		panic(e.NewNilArgumentError("loginCodeRepository"))
	}
	if loginCodeSender == nil {
		panic(e.NewNilArgumentError("loginCodeSender"))
	}
	return &service{
		log:                 log,
		loginCodeGenerator:  loginCodeGenerator,
		loginCodeRepository: loginCodeRepository,
		loginCodeSender:     loginCodeSender,
		codeValidFor:        codeValidFor,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	code := s.loginCodeGenerator.GenerateLoginCode()

	if err := s.loginCodeRepository.Create(ctx, input.Email, code, s.codeValidFor); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}
	if err := s.loginCodeSender.SendLoginCode(ctx, input.Email, code); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	s.log.Info(
		ctx,
		"Login code has been sent.",
		logging.Entry("email", input.Email),
		logging.Entry("validFor", s.codeValidFor),
	)
	return result, nil
}
