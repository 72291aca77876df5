package createreminder

import (
	"context"
	"reemind/internal/core/domain/calendar"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/core/services"
	"time"
)

type Input struct {
	Email    c.Email
	Name     string
	Month    int
	Day      int
	LeadDays reminder.LeadDays
}

func (i Input) GetRateLimitKey() string {
	return "create-reminder::" + string(i.Email)
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log                  logging.Logger
	reminderRepository   reminder.Repository
	confirmationEnqueuer reminder.ConfirmationEnqueuer
	now                  func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
	confirmationEnqueuer reminder.ConfirmationEnqueuer,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if confirmationEnqueuer == nil {
		panic(e.NewNilArgumentError("confirmationEnqueuer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                  log,
		reminderRepository:   reminderRepository,
		confirmationEnqueuer: confirmationEnqueuer,
		now:                  now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := validateOccurrence(input.Month, input.Day); err != nil {
		return result, err
	}
	if input.LeadDays < 1 {
		return result, reminder.ErrInvalidLeadDays
	}

	rem, err := s.reminderRepository.Create(ctx, reminder.CreateInput{
		Email:     input.Email,
		Name:      input.Name,
		Month:     input.Month,
		Day:       input.Day,
		LeadDays:  input.LeadDays,
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	// Confirmation delivery is best-effort, creation never fails because
	// of it.
	if err := s.confirmationEnqueuer.EnqueueConfirmation(ctx, rem); err != nil {
		s.log.Warning(
			ctx,
			"Could not enqueue confirmation email.",
			logging.Entry("reminderID", rem.ID),
			logging.Entry("err", err),
		)
	}

	s.log.Info(
		ctx,
		"Reminder has been successfully created.",
		logging.Entry("reminderID", rem.ID),
		logging.Entry("email", rem.Email),
	)
	result.Reminder = rem
	return result, nil
}

func validateOccurrence(month int, day int) error {
	if month < 1 || month > 12 {
		return reminder.ErrInvalidOccurrence
	}
	if day < 1 || day > calendar.MaxDaysInMonth(month) {
		return reminder.ErrInvalidOccurrence
	}
	return nil
}
