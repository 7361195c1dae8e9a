// Package entity contains the core business objects of the project.
package entity

import "time"

// Notification record types handled by this service. Records of any other
// type are created and consumed by the client app alone.
const (
	NotificationTypeFollowRequest         = "follow_request"
	NotificationTypeFollowRequestAccepted = "follow_request_accepted"
	NotificationTypeMessageRequest        = "message_request"
)

// NotificationRecord represents a persisted in-app notification. Follow-flow
// records are created by the client; message_request records are created here
// when a sender is not mutually connected with a recipient. Every creation
// triggers a secondary push-dispatch pass.
type NotificationRecord struct {
	ID            string    `json:"id"`              // The document ID of the record.
	UserID        string    `json:"user_id"`         // The recipient of the notification.
	Type          string    `json:"type"`            // One of the NotificationType constants.
	RelatedUserID string    `json:"related_user_id"` // Optional counterpart user (sender, requester).
	RelatedChatID string    `json:"related_chat_id"` // Optional chat the record points at.
	Title         string    `json:"title"`           // Stored headline.
	Body          string    `json:"body"`            // Stored body text.
	IsRead        bool      `json:"is_read"`         // Read flag, false on creation.
	CreatedAt     time.Time `json:"created_at"`      // Server-assigned creation timestamp.
}
