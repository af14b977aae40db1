package dto

// ChatMessage is a text message extracted from a chat webhook update.
// Session continuity with the hosted agent is keyed by UserID.
type ChatMessage struct {
	ChatID int64
	UserID int64
	Text   string
}
