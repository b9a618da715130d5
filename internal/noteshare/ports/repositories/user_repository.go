// Package repositories defines the data access interfaces of the service.
// Missing records are reported as apperrors.RecordNotFound; other storage
// failures carry apperrors.Database.
package repositories

import (
	"context"

	"noteshare/internal/noteshare/domain/entities"
)

// UserRepository persists users and their board sets.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	// GetByID loads a user; includeBoards controls whether the full board
	// set is expanded, which ownership checks require.
	GetByID(ctx context.Context, id string, includeBoards bool) (*entities.User, error)
	GetByAuthID(ctx context.Context, authID string, includeBoards bool) (*entities.User, error)
}

// BoardRepository persists boards.
type BoardRepository interface {
	Create(ctx context.Context, board *entities.Board) (*entities.Board, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Board, error)
}
