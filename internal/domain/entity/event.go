// Package entity contains the core business objects of the project.
package entity

// Event represents a social-app event document whose creation fans out a
// broadcast notification to every registered device.
type Event struct {
	ID          string `json:"id"`          // The document ID of the event.
	Title       string `json:"title"`       // Event title used in the notification headline.
	Description string `json:"description"` // Event description; only a leading slice is pushed.
}
