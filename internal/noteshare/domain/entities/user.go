// Package entities defines the domain entities of the notes-sharing service.
package entities

import "time"

// ID prefixes for generated identifiers.
const (
	UserIDPrefix       = "usr"
	BoardIDPrefix      = "brd"
	NoteIDPrefix       = "not"
	InviteIDPrefix     = "inv"
	ConnectionIDPrefix = "con"
)

// User is the owner of boards and, transitively, notes. Created on first
// successful authentication and never deleted.
type User struct {
	ID        string    `json:"id"`
	AuthID    string    `json:"-"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Boards is populated only when the user was loaded with boards.
	Boards []Board `json:"boards,omitempty"`
}

// AuthUserProfile is the profile resolved from an access token by the
// external auth provider.
type AuthUserProfile struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// NewUser creates a user from an external auth profile.
func NewUser(id string, profile *AuthUserProfile) *User {
	now := time.Now()
	return &User{
		ID:        id,
		AuthID:    profile.Sub,
		Email:     profile.Email,
		Name:      profile.Name,
		Picture:   profile.Picture,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnsBoard reports whether the board belongs to the user's loaded board set.
func (u *User) OwnsBoard(boardID string) bool {
	for _, b := range u.Boards {
		if b.ID == boardID {
			return true
		}
	}
	return false
}
