package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/predictkick/oracle-backend/internal/dto"
	"github.com/predictkick/oracle-backend/internal/errs"
	"github.com/predictkick/oracle-backend/internal/response"
	"github.com/predictkick/oracle-backend/pkg/logger"
)

// agentHandlers serves the hosted agent's action groups. Transport-level
// responses are always 200; the outcome travels in the envelope's
// httpStatusCode, as the tool protocol requires.
type agentHandlers struct {
	ResponseHandler response.ResponseHandler
	MatchSvc        MatchService
	OracleSvc       OracleService
}

func NewAgentHandlers(deps *Deps) *agentHandlers {
	return &agentHandlers{
		ResponseHandler: deps.ResponseHandler,
		MatchSvc:        deps.MatchSvc,
		OracleSvc:       deps.OracleSvc,
	}
}

func (h *agentHandlers) AgentRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/actions", h.HandleAction)
	return r
}

func (h *agentHandlers) HandleAction(w http.ResponseWriter, r *http.Request) {
	var req dto.ToolInvocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid tool invocation payload"))
		return
	}

	switch req.APIPath {
	case "/matches":
		h.listMatches(w, r, &req)
	case "/invoke-contract":
		h.invokeContract(w, r, &req)
	default:
		h.writeToolResponse(w, r, &req, http.StatusBadRequest,
			map[string]string{"error": "unrecognized apiPath " + req.APIPath})
	}
}

func (h *agentHandlers) listMatches(w http.ResponseWriter, r *http.Request, req *dto.ToolInvocationRequest) {
	params := req.Params()

	matches, err := h.MatchSvc.ListByStatus(r.Context(), params["status"])
	if err != nil {
		h.writeToolResponse(w, r, req, statusForError(err), map[string]string{"error": err.Error()})
		return
	}

	simplified := make([]dto.SimplifiedMatch, 0, len(matches))
	for _, m := range matches {
		record := dto.SimplifiedMatch{
			MatchID:      m.ID,
			HomeTeam:     m.HomeTeam.Name,
			AwayTeam:     m.AwayTeam.Name,
			StartTimeUTC: m.UTCDate,
			Status:       m.Status,
		}
		if m.Score != nil {
			record.Winner = m.Score.Winner
		}
		simplified = append(simplified, record)
	}

	h.writeToolResponse(w, r, req, http.StatusOK, simplified)
}

func (h *agentHandlers) invokeContract(w http.ResponseWriter, r *http.Request, req *dto.ToolInvocationRequest) {
	params := req.Params()

	functionName := params["functionName"]
	if functionName == "" {
		h.writeToolResponse(w, r, req, http.StatusBadRequest, "Function name not specified.")
		return
	}

	txHash, err := h.OracleSvc.Invoke(r.Context(), functionName, params["arguments"])
	if err != nil {
		logger.FromContext(r.Context()).Error("contract invocation failed",
			"function", functionName, "error", err)
		h.writeToolResponse(w, r, req, http.StatusInternalServerError, dto.ContractResult{
			Status:  dto.ContractStatusError,
			Message: err.Error(),
		})
		return
	}

	h.writeToolResponse(w, r, req, http.StatusOK, dto.ContractResult{
		Status: dto.ContractStatusSuccess,
		TxHash: txHash,
	})
}

func (h *agentHandlers) writeToolResponse(w http.ResponseWriter, r *http.Request, req *dto.ToolInvocationRequest, statusCode int, body any) {
	envelope, err := dto.NewToolResponse(req, statusCode, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode tool response", "error", err)
	}
}

// statusForError picks the envelope httpStatusCode for a failed action.
func statusForError(err error) int {
	switch err.(type) {
	case *errs.ValidationError:
		return http.StatusBadRequest
	case *errs.NotFoundError:
		return http.StatusNotFound
	case *errs.RateLimitedError:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
