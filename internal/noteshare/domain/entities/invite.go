package entities

import "time"

// Invite is a request for one user to connect with another via email.
// AcceptedAt is nil while the invite is pending and set exactly once on
// acceptance. Invites are never deleted once accepted.
type Invite struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	FriendEmail string     `json:"friend_email"`
	AcceptedAt  *time.Time `json:"accepted_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewInvite creates a pending invite from the given user to the friend email.
func NewInvite(id, userID, friendEmail string) *Invite {
	return &Invite{
		ID:          id,
		UserID:      userID,
		FriendEmail: friendEmail,
		AcceptedAt:  nil,
		CreatedAt:   time.Now(),
	}
}

// Accepted reports whether the invite has already been accepted.
func (i *Invite) Accepted() bool {
	return i.AcceptedAt != nil
}
