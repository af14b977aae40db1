package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/predictkick/oracle-backend/internal/dto"
	"github.com/predictkick/oracle-backend/internal/errs"
	"github.com/predictkick/oracle-backend/internal/response"
)

type webhookHandlers struct {
	ResponseHandler response.ResponseHandler
	RelaySvc        RelayService
}

func NewWebhookHandlers(deps *Deps) *webhookHandlers {
	return &webhookHandlers{
		ResponseHandler: deps.ResponseHandler,
		RelaySvc:        deps.RelaySvc,
	}
}

func (h *webhookHandlers) WebhookRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/webhook", h.HandleUpdate)
	return r
}

// HandleUpdate receives a Telegram webhook delivery. Handled updates are
// acknowledged with 200 so Telegram does not redeliver them.
func (h *webhookHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON payload"))
		return
	}

	if update.Message == nil {
		// some other update kind we don't handle
		h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"result": "not a message update"})
		return
	}
	if update.Message.Chat == nil || update.Message.From == nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed chat message"))
		return
	}

	msg := dto.ChatMessage{
		ChatID: update.Message.Chat.ID,
		UserID: update.Message.From.ID,
		Text:   update.Message.Text,
	}

	if err := h.RelaySvc.HandleMessage(r.Context(), msg); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"result": "message processed"})
}
