package deletereminder

import (
	"context"
	"errors"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/core/services"
	"reemind/internal/core/services/auth"
)

type Input struct {
	Email      c.Email
	ReminderID reminder.ID
}

func (i Input) WithAuthenticatedEmail(email c.Email) auth.Input {
	i.Email = email
	return i
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rem, err := s.reminderRepository.GetByID(ctx, input.ReminderID)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderDoesNotExist):
			s.log.Info(ctx, "Reminder not found.", logging.Entry("input", input))
		default:
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	if rem.Email != input.Email {
		s.log.Info(ctx, "Reminder belongs to another owner.", logging.Entry("input", input))
		return result, reminder.ErrReminderPermission
	}

	if err := s.reminderRepository.Delete(ctx, rem.ID); err != nil {
		if !errors.Is(err, reminder.ErrReminderDoesNotExist) {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder has been successfully deleted.",
		logging.Entry("reminderID", rem.ID),
	)
	result.Reminder = rem
	return result, nil
}
