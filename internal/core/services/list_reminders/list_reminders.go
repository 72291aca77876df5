package listreminders

import (
	"context"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/core/services"
	"reemind/internal/core/services/auth"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) WithAuthenticatedEmail(email c.Email) auth.Input {
	i.Email = email
	return i
}

type Result struct {
	Reminders []reminder.Reminder
	// DaysLeft[ix] is the number of days until Reminders[ix] next occurs.
	DaysLeft []int
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
	now                func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{
		EmailEquals: c.NewOptional(input.Email, true),
		OrderBy:     reminder.OrderByIDAsc,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	now := s.now()
	reminder.SortByUpcoming(reminders, now)

	daysLeft := make([]int, 0, len(reminders))
	for _, rem := range reminders {
		daysLeft = append(daysLeft, rem.DaysLeft(now))
	}

	result.Reminders = reminders
	result.DaysLeft = daysLeft
	return result, nil
}
