package entities

import "time"

// Board is a collection container owned by exactly one user, holding notes.
type Board struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultBoardName is the name of the board provisioned on first login.
const DefaultBoardName = "My Notes"

// NewBoard creates a board for the given owner.
func NewBoard(id, userID, name string) *Board {
	now := time.Now()
	return &Board{
		ID:        id,
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
