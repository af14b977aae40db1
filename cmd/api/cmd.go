package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/predictkick/oracle-backend/internal/bootstrap"
	"github.com/predictkick/oracle-backend/internal/config"
	"github.com/predictkick/oracle-backend/internal/handlers"
	"github.com/predictkick/oracle-backend/internal/response"
	"github.com/predictkick/oracle-backend/internal/router"
	"github.com/predictkick/oracle-backend/internal/services"
	"github.com/predictkick/oracle-backend/internal/store"
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
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	kstore := store.NewOracleKeyStore(bs.Secrets, cfg.OracleSecretID, cfg.OraclePrivateKey)

	// services
	mserv := services.NewMatchService(bs.Football)
	oserv := services.NewOracleService(kstore, bs.Registry, bs.Chain)
	rserv := services.NewRelayService(bs.Agent, bs.Telegram)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.MatchSvc = mserv
	deps.OracleSvc = oserv
	deps.RelaySvc = rserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":8080", r)
	exitOnError("server start failed", err, bs.Log)
}
