package app

import (
	"context"
	"fmt"
	"time"

	"noteshare/internal/noteshare/domain/apperrors"
	"noteshare/internal/noteshare/domain/entities"
	"noteshare/internal/noteshare/ports/repositories"
	"noteshare/pkg/identity"
)

// NotePatch carries the mutable note fields of a partial update; nil fields
// stay untouched.
type NotePatch struct {
	Title   *string
	Content *string
}

// NoteUseCase implements note reads and mutations guarded by the ownership
// predicates.
type NoteUseCase struct {
	notes  repositories.NoteRepository
	users  repositories.UserRepository
	userUC *UserUseCase
}

// NewNoteUseCase creates a new NoteUseCase.
func NewNoteUseCase(notes repositories.NoteRepository, users repositories.UserRepository, userUC *UserUseCase) *NoteUseCase {
	return &NoteUseCase{notes: notes, users: users, userUC: userUC}
}

// GetNote returns the note iff the caller owns it through one of their
// boards.
func (uc *NoteUseCase) GetNote(ctx context.Context, userID, noteID string) (*entities.Note, error) {
	note, _, err := uc.loadAndAuthorize(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote merges the patch into the note and persists it, after the
// ownership check.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, userID, noteID string, patch NotePatch) (*entities.Note, error) {
	note, _, err := uc.loadAndAuthorize(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	note.UpdatedAt = time.Now()

	updated, err := uc.notes.Update(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return updated, nil
}

// DeleteNote removes the note after the ownership check.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, userID, noteID string) error {
	note, _, err := uc.loadAndAuthorize(ctx, userID, noteID)
	if err != nil {
		return err
	}

	if err := uc.notes.Delete(ctx, note.ID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// CreateNote creates a note on one of the caller's boards.
func (uc *NoteUseCase) CreateNote(ctx context.Context, userID, boardID, title, content string) (*entities.Note, error) {
	user, err := uc.users.GetByID(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	if !user.OwnsBoard(boardID) {
		return nil, apperrors.New(apperrors.Authorization,
			fmt.Sprintf("User %s is not the owner of board %s", user.ID, boardID))
	}

	note, err := uc.notes.Create(ctx,
		entities.NewNote(identity.GenerateID(entities.NoteIDPrefix), boardID, title, content))
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

// ListNotes returns the notes on one of the caller's boards, newest first.
func (uc *NoteUseCase) ListNotes(ctx context.Context, userID, boardID string) ([]*entities.Note, error) {
	user, err := uc.users.GetByID(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	if !user.OwnsBoard(boardID) {
		return nil, apperrors.New(apperrors.Authorization,
			fmt.Sprintf("User %s is not the owner of board %s", user.ID, boardID))
	}

	return uc.notes.ListByBoardID(ctx, boardID)
}

// loadAndAuthorize loads the note and the caller with their full board set,
// then runs the note-ownership predicate.
func (uc *NoteUseCase) loadAndAuthorize(ctx context.Context, userID, noteID string) (*entities.Note, *entities.User, error) {
	note, err := uc.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, nil, err
	}

	user, err := uc.users.GetByID(ctx, userID, true)
	if err != nil {
		return nil, nil, err
	}

	if err := uc.userUC.IsNoteOwner(user, note); err != nil {
		return nil, nil, err
	}
	return note, user, nil
}
