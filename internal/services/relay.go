package services

import (
	"context"
	"strconv"

	"github.com/predictkick/oracle-backend/internal/dto"
	"github.com/predictkick/oracle-backend/pkg/logger"
)

// Fixed user-facing notices; end users never see raw status codes.
const (
	textOnlyNotice = "I can only understand text messages."
	apologyNotice  = "Sorry, I'm having trouble thinking right now. Please try again later."
)

// --- Dependencies (minimal interfaces scoped to this service) ---

// agentClient is the hosted-agent adapter surface, shared with the trigger
// service.
type agentClient interface {
	InvokeAgent(ctx context.Context, sessionID, inputText string) (string, error)
}

type chatClient interface {
	SendMessage(chatID int64, text string, markdown bool) error
}

type relayService struct {
	agent agentClient
	chat  chatClient
}

func NewRelayService(agent agentClient, chat chatClient) *relayService {
	return &relayService{
		agent: agent,
		chat:  chat,
	}
}

// HandleMessage forwards a chat message to the hosted agent under a session
// keyed by the sender and relays the assembled reply back to the chat. A
// returned error means the agent path failed; the user has already been
// notified by then.
func (s *relayService) HandleMessage(ctx context.Context, msg dto.ChatMessage) error {
	log := logger.FromContext(ctx)

	if msg.Text == "" {
		// stickers, photos and the like
		if err := s.chat.SendMessage(msg.ChatID, textOnlyNotice, false); err != nil {
			log.Warn("text-only notice not delivered", "error", err)
		}
		return nil
	}

	reply, err := s.agent.InvokeAgent(ctx, strconv.FormatInt(msg.UserID, 10), msg.Text)
	if err != nil {
		log.Error("agent invocation failed", "error", err)
		if sendErr := s.chat.SendMessage(msg.ChatID, apologyNotice, false); sendErr != nil {
			log.Warn("apology notice not delivered", "error", sendErr)
		}
		return err
	}

	if reply != "" {
		// The webhook is acknowledged regardless; a failed send must not
		// make the chat platform redeliver the update.
		if err := s.chat.SendMessage(msg.ChatID, reply, true); err != nil {
			log.Error("reply not delivered", "chat_id", msg.ChatID, "error", err)
		}
	}
	return nil
}
