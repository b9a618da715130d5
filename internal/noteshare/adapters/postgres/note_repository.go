package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"noteshare/internal/noteshare/domain/apperrors"
	"noteshare/internal/noteshare/domain/entities"
	"noteshare/internal/noteshare/ports/repositories"
	"noteshare/pkg/logger"
)

// NoteRepository implements repositories.NoteRepository over Postgres.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository creates a new note repository.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create persists a new note.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating note", zap.String("boardID", note.BoardID))

	query := `
        INSERT INTO notes (id, board_id, title, content)
        VALUES ($1, $2, $3, $4)
        RETURNING id, board_id, title, content, created_at, updated_at
    `

	var created entities.Note
	err := r.pool.QueryRow(ctx, query, note.ID, note.BoardID, note.Title, note.Content).Scan(
		&created.ID,
		&created.BoardID,
		&created.Title,
		&created.Content,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		log.Error(ctx, "error creating note", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error creating note")(err)
	}

	return &created, nil
}

// GetByID loads a note by id.
func (r *NoteRepository) GetByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))

	query := `
        SELECT id, board_id, title, content, created_at, updated_at
        FROM notes
        WHERE id = $1
    `

	var note entities.Note
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&note.ID,
		&note.BoardID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("id", id))
			return nil, apperrors.New(apperrors.RecordNotFound, fmt.Sprintf("Note %s not found", id))
		}
		log.Error(ctx, "error finding note", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error querying note by id")(err)
	}

	return &note, nil
}

// ListByBoardID returns all notes on the board.
func (r *NoteRepository) ListByBoardID(ctx context.Context, boardID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByBoardID"))

	query := `
        SELECT id, board_id, title, content, created_at, updated_at
        FROM notes
        WHERE board_id = $1
        ORDER BY updated_at DESC
    `

	rows, err := r.pool.Query(ctx, query, boardID)
	if err != nil {
		log.Error(ctx, "error listing notes", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error listing notes")(err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		if err := rows.Scan(&note.ID, &note.BoardID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Error(ctx, "error scanning note", zap.Error(err))
			return nil, apperrors.Convert(apperrors.Database, "error scanning note")(err)
		}
		notes = append(notes, &note)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating notes", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error iterating notes")(err)
	}

	return notes, nil
}

// Update persists the mutable fields of the note.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.String("id", note.ID))

	query := `
        UPDATE notes
        SET title = $1, content = $2, updated_at = now()
        WHERE id = $3
        RETURNING id, board_id, title, content, created_at, updated_at
    `

	var updated entities.Note
	err := r.pool.QueryRow(ctx, query, note.Title, note.Content, note.ID).Scan(
		&updated.ID,
		&updated.BoardID,
		&updated.Title,
		&updated.Content,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("id", note.ID))
			return nil, apperrors.New(apperrors.RecordNotFound, fmt.Sprintf("Note %s not found", note.ID))
		}
		log.Error(ctx, "error updating note", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error updating note")(err)
	}

	return &updated, nil
}

// Delete removes a note.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting note", zap.String("id", id))

	result, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting note", zap.Error(err))
		return apperrors.Convert(apperrors.Database, "error deleting note")(err)
	}
	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found", zap.String("id", id))
		return apperrors.New(apperrors.RecordNotFound, fmt.Sprintf("Note %s not found", id))
	}

	return nil
}
