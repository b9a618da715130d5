package entities

import "time"

// ConnectionTypeConnected is the single connection type created on invite
// acceptance.
const ConnectionTypeConnected = "connected"

// UserConnection is a confirmed bidirectional relationship between two
// users. UserFirstID always refers to the original invite sender and
// UserSecondID to the accepter.
type UserConnection struct {
	ID           string    `json:"id"`
	UserFirstID  string    `json:"user_first_id"`
	UserSecondID string    `json:"user_second_id"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewConnection creates a connection between the inviter and the accepter.
func NewConnection(id, inviterID, accepterID string) *UserConnection {
	return &UserConnection{
		ID:           id,
		UserFirstID:  inviterID,
		UserSecondID: accepterID,
		Type:         ConnectionTypeConnected,
		CreatedAt:    time.Now(),
	}
}

// Involves reports whether the connection references the given user id.
func (c *UserConnection) Involves(userID string) bool {
	return c.UserFirstID == userID || c.UserSecondID == userID
}
