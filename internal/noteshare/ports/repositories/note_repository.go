package repositories

import (
	"context"

	"noteshare/internal/noteshare/domain/entities"
)

// NoteRepository persists notes.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	GetByID(ctx context.Context, id string) (*entities.Note, error)
	ListByBoardID(ctx context.Context, boardID string) ([]*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, id string) error
}
