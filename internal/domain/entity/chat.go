// Package entity contains the core business objects of the project.
package entity

// Chat represents a conversation between two or more users.
type Chat struct {
	ID           string   `json:"id"`           // The document ID of the chat.
	Name         string   `json:"name"`         // Optional display name; group chats usually set one.
	Participants []string `json:"participants"` // User IDs taking part in the chat.
}

// RecipientsOf returns the participants minus the sender, in participant order.
// Duplicate participant entries collapse to a single recipient.
func (c *Chat) RecipientsOf(senderID string) []string {
	seen := make(map[string]struct{}, len(c.Participants))
	recipients := make([]string, 0, len(c.Participants))
	for _, id := range c.Participants {
		if id == senderID || id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	return recipients
}
