package selectduereminders

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
	At time.Time
}

type Result struct {
	Reminders []reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
}

// New creates a service that selects every reminder due for notification at
// the given reference time. A reminder is due when, for some catalog lead
// time d, its occurrence lands exactly d days ahead of the reference date
// and its own lead time equals d.
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
	return &service{log: log, reminderRepository: reminderRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	due := make([]reminder.Reminder, 0)
	for _, leadDays := range reminder.LeadDaysCatalog {
		// A Mar 1 target in a non-leap year also covers stored Feb 29
		// occurrences, so a bucket may query more than one date.
		for _, target := range calendar.TargetDates(input.At, int(leadDays)) {
			reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{
				OccurrenceEquals: c.NewOptional(target, true),
				LeadDaysEquals:   c.NewOptional(leadDays, true),
				OrderBy:          reminder.OrderByIDAsc,
			})
			if err != nil {
				logging.Error(
					ctx,
					s.log,
					err,
					logging.Entry("leadDays", leadDays),
					logging.Entry("target", target),
				)
				return result, err
			}
			due = append(due, reminders...)
		}
	}

	s.log.Info(
		ctx,
		"Due reminders selected.",
		logging.Entry("at", input.At),
		logging.Entry("count", len(due)),
	)
	return Result{Reminders: due}, nil
}
