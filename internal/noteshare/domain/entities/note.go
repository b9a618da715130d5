package entities

import "time"

// Note belongs to a board; ownership is derived through the board's owner.
type Note struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"board_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a note on the given board.
func NewNote(id, boardID, title, content string) *Note {
	now := time.Now()
	return &Note{
		ID:        id,
		BoardID:   boardID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
