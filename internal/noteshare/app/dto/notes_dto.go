// Package dto defines the request and response shapes of the HTTP API.
package dto

// CreateNoteInput contains the data for creating a note.
type CreateNoteInput struct {
	BoardID string `json:"board_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// NotePatchInput contains the partial note payload of a PATCH request.
// Nil fields are left untouched.
type NotePatchInput struct {
	Title   *string `json:"title" validate:"omitnil,min=1"`
	Content *string `json:"content"`
}
