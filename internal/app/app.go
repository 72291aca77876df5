package app

import (
	"fmt"
	"net/http"
	"reemind/internal/app/deps"
	"reemind/internal/app/services"
	"reemind/internal/http/handlers/auth"
	logout "reemind/internal/http/handlers/auth/log_out"
	me "reemind/internal/http/handlers/auth/me"
	sendlogincode "reemind/internal/http/handlers/auth/send_login_code"
	verifylogincode "reemind/internal/http/handlers/auth/verify_login_code"
	createreminder "reemind/internal/http/handlers/reminders/create_reminder"
	deletereminder "reemind/internal/http/handlers/reminders/delete_reminder"
	listreminders "reemind/internal/http/handlers/reminders/list_reminders"
	updatereminder "reemind/internal/http/handlers/reminders/update_reminder"
	sweepevents "reemind/internal/http/handlers/sweep/events"
	runsweep "reemind/internal/http/handlers/sweep/run_sweep"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/code", sendlogincode.New(s.SendLoginCode))
	authRouter.Method(
		http.MethodPost,
		"/login",
		verifylogincode.New(s.VerifyLoginCode, deps.Config.SessionValidFor),
	)
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.With(auth.SetAuthTokenToContext).Method(http.MethodGet, "/me", me.New(s.GetOwner))

	reminderRouter := chi.NewRouter()
	reminderRouter.Use(auth.SetAuthTokenToContext)
	// Creation is open to the landing page, no session required.
	reminderRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder))
	reminderRouter.Method(http.MethodGet, "/", listreminders.New(s.ListReminders))
	reminderRouter.Method(http.MethodPatch, "/{reminderID:[0-9]+}", updatereminder.New(s.UpdateReminder))
	reminderRouter.Method(http.MethodDelete, "/{reminderID:[0-9]+}", deletereminder.New(s.DeleteReminder))

	sweepRouter := chi.NewRouter()
	sweepRouter.Method(
		http.MethodPost,
		"/",
		runsweep.New(s.RunSweep, deps.Config.CronSecret, deps.Now),
	)
	sweepRouter.With(auth.SetAuthTokenToContext).Method(
		http.MethodGet,
		"/events",
		sweepevents.New(deps.Logger, deps.SseServer, s.GetOwner),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/reminders", reminderRouter)
	router.Mount("/sweep", sweepRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
