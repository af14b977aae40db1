package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/predictkick/oracle-backend/internal/dto"
	"github.com/predictkick/oracle-backend/internal/response"
)

type matchHandlers struct {
	ResponseHandler response.ResponseHandler
	MatchSvc        MatchService
}

func NewMatchHandlers(deps *Deps) *matchHandlers {
	return &matchHandlers{
		ResponseHandler: deps.ResponseHandler,
		MatchSvc:        deps.MatchSvc,
	}
}

func (h *matchHandlers) MatchRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.QueryMatches)
	return r
}

func (h *matchHandlers) QueryMatches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := dto.MatchQuery{
		Status:   query.Get("status"),
		DateFrom: query.Get("dateFrom"),
		DateTo:   query.Get("dateTo"),
		Team:     query.Get("team"),
	}

	records, err := h.MatchSvc.Query(r.Context(), q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]any{"matches": records})
}
