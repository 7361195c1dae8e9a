// Package entity contains the core business objects of the project.
package entity

// User represents an app user as stored in the users collection.
//
// The client app owns every field; this service only reads them.
type User struct {
	ID          string   `json:"id"`           // The document ID of the user.
	DisplayName string   `json:"display_name"` // The name shown in notification copy.
	FCMTokens   []string `json:"fcm_tokens"`   // Device tokens registered for push delivery. Duplicates are collapsed on read.
	Following   []string `json:"following"`    // IDs of the users this user follows.
}

// Follows reports whether the user's following set contains the given user ID.
func (u *User) Follows(userID string) bool {
	for _, id := range u.Following {
		if id == userID {
			return true
		}
	}

	return false
}
