package services

import (
	"reemind/internal/app/deps"
	drl "reemind/internal/core/domain/rate_limiter"
	"reemind/internal/core/services"
	"reemind/internal/core/services/auth"
	createreminder "reemind/internal/core/services/create_reminder"
	deletereminder "reemind/internal/core/services/delete_reminder"
	getowner "reemind/internal/core/services/get_owner"
	listreminders "reemind/internal/core/services/list_reminders"
	logout "reemind/internal/core/services/log_out"
	ratelimiting "reemind/internal/core/services/rate_limiting"
	runsweep "reemind/internal/core/services/run_sweep"
	selectduereminders "reemind/internal/core/services/select_due_reminders"
	sendconfirmation "reemind/internal/core/services/send_confirmation"
	sendlogincode "reemind/internal/core/services/send_login_code"
	updatereminder "reemind/internal/core/services/update_reminder"
	verifylogincode "reemind/internal/core/services/verify_login_code"
)

type Services struct {
	SendLoginCode   services.Service[sendlogincode.Input, sendlogincode.Result]
	VerifyLoginCode services.Service[verifylogincode.Input, verifylogincode.Result]
	LogOut          services.Service[logout.Input, logout.Result]
	GetOwner        services.Service[getowner.Input, getowner.Result]

	CreateReminder services.Service[createreminder.Input, createreminder.Result]
	ListReminders  services.Service[listreminders.Input, listreminders.Result]
	UpdateReminder services.Service[updatereminder.Input, updatereminder.Result]
	DeleteReminder services.Service[deletereminder.Input, deletereminder.Result]

	SelectDueReminders services.Service[selectduereminders.Input, selectduereminders.Result]
	RunSweep           services.Service[runsweep.Input, runsweep.Result]
	SendConfirmation   services.Service[sendconfirmation.Input, sendconfirmation.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SendLoginCode = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 5},
		sendlogincode.New(
			deps.Logger,
			deps.LoginCodeGenerator,
			deps.LoginCodeRepository,
			deps.EmailSender,
			deps.Config.LoginCodeValidFor,
		),
	)
	s.VerifyLoginCode = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		verifylogincode.New(
			deps.Logger,
			deps.LoginCodeRepository,
			deps.OwnerRepository,
			deps.SessionRepository,
			deps.SessionTokenGenerator,
			deps.Config.SessionValidFor,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetOwner = auth.WithAuthentication(
		deps.SessionRepository,
		getowner.New(
			deps.Logger,
			deps.OwnerRepository,
		),
	)

	s.CreateReminder = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: 10},
		createreminder.New(
			deps.Logger,
			deps.ReminderRepository,
			deps.ConfirmationEnqueuer,
			deps.Now,
		),
	)
	s.ListReminders = auth.WithAuthentication(
		deps.SessionRepository,
		listreminders.New(
			deps.Logger,
			deps.ReminderRepository,
			deps.Now,
		),
	)
	s.UpdateReminder = auth.WithAuthentication(
		deps.SessionRepository,
		updatereminder.New(
			deps.Logger,
			deps.ReminderRepository,
		),
	)
	s.DeleteReminder = auth.WithAuthentication(
		deps.SessionRepository,
		deletereminder.New(
			deps.Logger,
			deps.ReminderRepository,
		),
	)

	s.SelectDueReminders = selectduereminders.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.RunSweep = runsweep.New(
		deps.Logger,
		s.SelectDueReminders,
		deps.EmailSender,
		deps.LogRepository,
		deps.SweepEventPublisher,
		deps.Config.NotificationTimeout,
		deps.Now,
	)
	s.SendConfirmation = sendconfirmation.New(
		deps.Logger,
		deps.EmailSender,
	)

	return s
}
