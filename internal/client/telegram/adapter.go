package telegramclient

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Adapter struct {
	bot *tgbotapi.BotAPI
}

func NewAdapter(token string) (*Adapter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	return &Adapter{bot: bot}, nil
}

// SendMessage posts a message to the given chat; markdown enables rich-text
// rendering of the reply.
func (a *Adapter) SendMessage(chatID int64, text string, markdown bool) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}
	_, err := a.bot.Send(msg)
	return err
}
