package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/robfig/cron/v3"

	"github.com/predictkick/oracle-backend/internal/bootstrap"
	"github.com/predictkick/oracle-backend/internal/config"
	"github.com/predictkick/oracle-backend/internal/services"
	"github.com/predictkick/oracle-backend/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.RunTrigger(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// services
	tserv := services.NewTriggerService(bs.Agent)

	// scheduler
	c := cron.New()
	_, err = c.AddFunc(cfg.TriggerSchedule, func() {
		ctx := logger.ToContext(context.Background(), bs.Log)
		if err := tserv.Run(ctx); err != nil {
			bs.Log.Error("scheduled trigger run failed", "error", err)
		}
	})
	exitOnError("invalid trigger schedule", err, bs.Log)

	c.Start()
	bs.Log.Info("trigger scheduler started", "schedule", cfg.TriggerSchedule)
	select {}
}
