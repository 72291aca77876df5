package sendconfirmation

import (
	"context"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/core/services"
)

type Input struct {
	Reminder reminder.Reminder
}

type Result struct{}

type service struct {
	log                logging.Logger
	confirmationSender reminder.ConfirmationSender
}

func New(
	log logging.Logger,
	confirmationSender reminder.ConfirmationSender,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if confirmationSender == nil {
		panic(e.NewNilArgumentError("confirmationSender"))
	}
	return &service{log: log, confirmationSender: confirmationSender}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.confirmationSender.SendConfirmation(ctx, input.Reminder); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderId", input.Reminder.ID))
		return result, err
	}
	s.log.Info(
		ctx,
		"Confirmation email has been sent.",
		logging.Entry("reminderId", input.Reminder.ID),
	)
	return result, nil
}
