package main

import (
	"context"
	"os"
	"os/signal"
	"reemind/internal/app/deps"
	"reemind/internal/app/services"
	"reemind/internal/core/domain/logging"
	runsweep "reemind/internal/core/services/run_sweep"
	"syscall"

	"github.com/robfig/cron/v3"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	scheduler := cron.New()
	_, err := scheduler.AddFunc(deps.Config.SweepCronSpec, func() {
		log.Info(context.Background(), "Launching notification sweep.")
		result, err := services.RunSweep.Run(context.Background(), runsweep.Input{At: deps.Now()})
		if err != nil {
			log.Error(context.Background(), "Sweep returned an error.", logging.Entry("err", err))
			return
		}
		log.Info(
			context.Background(),
			"Notification sweep finished.",
			logging.Entry("remindersSent", result.Summary.RemindersSent),
			logging.Entry("errors", result.Summary.Errors),
		)
	})
	if err != nil {
		log.Error(context.Background(), "Invalid sweep cron spec.", logging.Entry("err", err))
		panic(err)
	}

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic notification sweeper.",
		logging.Entry("cronSpec", deps.Config.SweepCronSpec),
	)
	scheduler.Start()

	<-stopCh
	log.Info(context.Background(), "Stopping periodic notification sweeper.")
	<-scheduler.Stop().Done()
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
