// Package entity contains the core business objects of the project.
package entity

// DispatchPayload is the notification bundle handed to the push delivery
// service together with a token list. It is ephemeral and never persisted.
type DispatchPayload struct {
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	ClickAction string            `json:"click_action"`
	Data        map[string]string `json:"data"`
}
