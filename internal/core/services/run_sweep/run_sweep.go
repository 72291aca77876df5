package runsweep

import (
	"context"
	"fmt"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/core/services"
	selectduereminders "reemind/internal/core/services/select_due_reminders"
	"time"
)

type Input struct {
	At time.Time
}

type Result struct {
	Summary reminder.SweepSummary
}

type service struct {
	log                 logging.Logger
	selectDueReminders  services.Service[selectduereminders.Input, selectduereminders.Result]
	notifier            reminder.Notifier
	logRepository       reminder.LogRepository
	sweepEventPublisher reminder.SweepEventPublisher
	notificationTimeout time.Duration
	now                 func() time.Time
}

// New creates the sweep orchestrator. It walks every due reminder, attempts
// a notification for each, records the attempt, and reports a summary.
// A failure to reach one recipient never aborts the rest of the sweep; only
// a failure to read the reminder store does.
func New(
	log logging.Logger,
	selectDueReminders services.Service[selectduereminders.Input, selectduereminders.Result],
	notifier reminder.Notifier,
	logRepository reminder.LogRepository,
	sweepEventPublisher reminder.SweepEventPublisher,
	notificationTimeout time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if selectDueReminders == nil {
		panic(e.NewNilArgumentError("selectDueReminders"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if logRepository == nil {
		panic(e.NewNilArgumentError("logRepository"))
	}
	if sweepEventPublisher == nil {
		panic(e.NewNilArgumentError("sweepEventPublisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                 log,
		selectDueReminders:  selectDueReminders,
		notifier:            notifier,
		logRepository:       logRepository,
		sweepEventPublisher: sweepEventPublisher,
		notificationTimeout: notificationTimeout,
		now:                 now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	selected, err := s.selectDueReminders.Run(ctx, selectduereminders.Input{At: input.At})
	if err != nil {
		return result, err
	}

	summary := reminder.SweepSummary{
		Errors: make([]string, 0),
	}
	for _, rem := range selected.Reminders {
		sendErr := s.sendOne(ctx, rem)
		sentAt := s.now()
		if sendErr == nil {
			summary.RemindersSent++
		} else {
			summary.Errors = append(
				summary.Errors,
				fmt.Sprintf("failed to send reminder to %s: %v", rem.Email, sendErr),
			)
			s.log.Warning(
				ctx,
				"Could not send reminder notification.",
				logging.Entry("reminderId", rem.ID),
				logging.Entry("err", sendErr),
			)
		}
		s.sweepEventPublisher.PublishSweepEvent(ctx, sweepEvent(rem, sendErr, sentAt))
		if logErr := s.appendLog(ctx, rem, sendErr, sentAt); logErr != nil {
			summary.Errors = append(
				summary.Errors,
				fmt.Sprintf("failed to record attempt for %s: %v", rem.Email, logErr),
			)
			logging.Error(ctx, s.log, logErr, logging.Entry("reminderId", rem.ID))
		}
	}
	// The summary carries the completion time, not the start time.
	summary.Timestamp = s.now()

	s.log.Info(
		ctx,
		"Notification sweep finished.",
		logging.Entry("selected", len(selected.Reminders)),
		logging.Entry("sent", summary.RemindersSent),
		logging.Entry("errors", len(summary.Errors)),
	)
	return Result{Summary: summary}, nil
}

func (s *service) sendOne(ctx context.Context, rem reminder.Reminder) error {
	sendCtx, cancel := context.WithTimeout(ctx, s.notificationTimeout)
	defer cancel()
	return s.notifier.SendReminder(sendCtx, rem)
}

func (s *service) appendLog(
	ctx context.Context,
	rem reminder.Reminder,
	sendErr error,
	sentAt time.Time,
) error {
	logInput := reminder.CreateLogInput{
		ReminderID: rem.ID,
		SentAt:     sentAt,
		Success:    sendErr == nil,
		LeadDays:   rem.LeadDays,
	}
	if sendErr != nil {
		logInput.Error = c.NewOptional(sendErr.Error(), true)
	}
	_, err := s.logRepository.Create(ctx, logInput)
	return err
}

func sweepEvent(rem reminder.Reminder, sendErr error, at time.Time) reminder.SweepEvent {
	event := reminder.SweepEvent{
		ReminderID: rem.ID,
		Email:      string(rem.Email),
		Name:       rem.Name,
		LeadDays:   rem.LeadDays,
		Success:    sendErr == nil,
		At:         at,
	}
	if sendErr != nil {
		event.Error = sendErr.Error()
	}
	return event
}
