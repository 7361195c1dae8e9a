// Package entity contains the core business objects of the project.
package entity

// Message type tags as written by the client app.
const (
	MessageTypeText  = "text"
	MessageTypeVoice = "voice"
)

// Message represents a chat message document. Its creation is what triggers
// the recipient resolution pipeline.
type Message struct {
	ID       string `json:"id"`        // The document ID of the message, taken from the trigger path.
	ChatID   string `json:"chat_id"`   // The chat this message belongs to.
	SenderID string `json:"sender_id"` // The user who sent the message.
	Text     string `json:"text"`      // Message text; empty for voice messages.
	Type     string `json:"type"`      // Message type tag (text, voice, ...).
}
