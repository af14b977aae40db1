package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/predictkick/oracle-backend/internal/handlers"
	"github.com/predictkick/oracle-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(lm.LoggerMiddleware)

	mh := handlers.NewMatchHandlers(deps)
	ah := handlers.NewAgentHandlers(deps)
	wh := handlers.NewWebhookHandlers(deps)

	r.Mount("/matches", mh.MatchRoutes())
	r.Mount("/agent", ah.AgentRoutes())
	r.Mount("/telegram", wh.WebhookRoutes())
	return r
}
