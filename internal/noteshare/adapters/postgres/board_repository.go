package postgres

import (
	"context"

	"go.uber.org/zap"

	"noteshare/internal/noteshare/domain/apperrors"
	"noteshare/internal/noteshare/domain/entities"
	"noteshare/internal/noteshare/ports/repositories"
	"noteshare/pkg/logger"
)

// BoardRepository implements repositories.BoardRepository over Postgres.
type BoardRepository struct {
	pool PgxPoolInterface
}

// NewBoardRepository creates a new board repository.
func NewBoardRepository(pool PgxPoolInterface) repositories.BoardRepository {
	return &BoardRepository{pool: pool}
}

// Create persists a new board.
func (r *BoardRepository) Create(ctx context.Context, board *entities.Board) (*entities.Board, error) {
	log := logger.Log(ctx).With(zap.String("repository", "board"), zap.String("method", "Create"))

	query := `
        INSERT INTO boards (id, user_id, name)
        VALUES ($1, $2, $3)
        RETURNING id, user_id, name, created_at, updated_at
    `

	var created entities.Board
	err := r.pool.QueryRow(ctx, query, board.ID, board.UserID, board.Name).Scan(
		&created.ID,
		&created.UserID,
		&created.Name,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		log.Error(ctx, "error creating board", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error creating board")(err)
	}

	return &created, nil
}

// ListByUserID returns all boards owned by the user.
func (r *BoardRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Board, error) {
	log := logger.Log(ctx).With(zap.String("repository", "board"), zap.String("method", "ListByUserID"))

	query := `
        SELECT id, user_id, name, created_at, updated_at
        FROM boards
        WHERE user_id = $1
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error listing boards", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error listing boards")(err)
	}
	defer rows.Close()

	boards := make([]entities.Board, 0)
	for rows.Next() {
		var board entities.Board
		if err := rows.Scan(&board.ID, &board.UserID, &board.Name, &board.CreatedAt, &board.UpdatedAt); err != nil {
			log.Error(ctx, "error scanning board", zap.Error(err))
			return nil, apperrors.Convert(apperrors.Database, "error scanning board")(err)
		}
		boards = append(boards, board)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating boards", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error iterating boards")(err)
	}

	return boards, nil
}
