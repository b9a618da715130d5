// Package notes contains the HTTP handlers of the notes resource.
package notes

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteshare/internal/noteshare/adapters/http/apierrors"
	"noteshare/internal/noteshare/adapters/http/middleware"
	"noteshare/internal/noteshare/app"
	"noteshare/internal/noteshare/app/dto"
	"noteshare/internal/noteshare/domain/apperrors"
	"noteshare/internal/noteshare/domain/entities"
	"noteshare/pkg/logger"
)

// Log and error messages.
const (
	LogHandlerGetNote    = "handling get note request"
	LogHandlerCreateNote = "handling create note request"
	LogHandlerPatchNote  = "handling patch note request"
	LogHandlerDeleteNote = "handling delete note request"
	LogHandlerListNotes  = "handling list notes request"

	ErrMsgInvalidNoteID     = "Note id is required"
	ErrMsgInvalidBoardID    = "Board id is required"
	ErrMsgUnparsableCreate  = "Unable to parse note create input"
	ErrMsgUnparsablePatch   = "Unable to parse note patch input"
	ErrMsgMissingCallerUser = "caller user missing from request context"
)

// Handler serves the notes resource.
type Handler struct {
	notes *app.NoteUseCase
}

// NewHandler creates a new notes handler.
func NewHandler(notes *app.NoteUseCase) *Handler {
	return &Handler{notes: notes}
}

// GetNote handles GET /api/notes/:note_id.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	userCtx, user := caller(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(userCtx, LogHandlerGetNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return apierrors.Respond(ctx, apperrors.New(apperrors.Validation, ErrMsgInvalidNoteID))
	}

	note, err := h.notes.GetNote(userCtx, user.ID, noteID)
	if err != nil {
		log.Debug(userCtx, "failed to get note", zap.Error(err))
		return apierrors.Respond(ctx, err)
	}

	return ctx.JSON(note)
}

// CreateNote handles POST /api/notes.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	userCtx, user := caller(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(userCtx, LogHandlerCreateNote)

	var input dto.CreateNoteInput
	if err := ctx.Bind().Body(&input); err != nil {
		log.Debug(userCtx, ErrMsgUnparsableCreate, zap.Error(err))
		return apierrors.Respond(ctx, apperrors.New(apperrors.Validation, ErrMsgUnparsableCreate))
	}

	note, err := h.notes.CreateNote(userCtx, user.ID, input.BoardID, input.Title, input.Content)
	if err != nil {
		log.Debug(userCtx, "failed to create note", zap.Error(err))
		return apierrors.Respond(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(note)
}

// PatchNote handles PATCH /api/notes/:note_id. The body is parsed and
// validated before any lookup happens.
func (h *Handler) PatchNote(ctx fiber.Ctx) error {
	userCtx, user := caller(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.PatchNote"))
	log.Debug(userCtx, LogHandlerPatchNote)

	var input dto.NotePatchInput
	if err := ctx.Bind().Body(&input); err != nil {
		log.Debug(userCtx, ErrMsgUnparsablePatch, zap.Error(err))
		return apierrors.Respond(ctx, apperrors.New(apperrors.Validation, ErrMsgUnparsablePatch))
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return apierrors.Respond(ctx, apperrors.New(apperrors.Validation, ErrMsgInvalidNoteID))
	}

	note, err := h.notes.UpdateNote(userCtx, user.ID, noteID, app.NotePatch{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		log.Debug(userCtx, "failed to patch note", zap.Error(err))
		return apierrors.Respond(ctx, err)
	}

	return ctx.JSON(note)
}

// DeleteNote handles DELETE /api/notes/:note_id.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	userCtx, user := caller(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(userCtx, LogHandlerDeleteNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return apierrors.Respond(ctx, apperrors.New(apperrors.Validation, ErrMsgInvalidNoteID))
	}

	if err := h.notes.DeleteNote(userCtx, user.ID, noteID); err != nil {
		log.Debug(userCtx, "failed to delete note", zap.Error(err))
		return apierrors.Respond(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// ListNotes handles GET /api/boards/:board_id/notes.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	userCtx, user := caller(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(userCtx, LogHandlerListNotes)

	boardID := ctx.Params("board_id")
	if boardID == "" {
		return apierrors.Respond(ctx, apperrors.New(apperrors.Validation, ErrMsgInvalidBoardID))
	}

	notes, err := h.notes.ListNotes(userCtx, user.ID, boardID)
	if err != nil {
		log.Debug(userCtx, "failed to list notes", zap.Error(err))
		return apierrors.Respond(ctx, err)
	}

	return ctx.JSON(notes)
}

// caller extracts the request context and authenticated user placed in
// Locals by the middleware chain.
func caller(ctx fiber.Ctx) (context.Context, *entities.User) {
	userCtx, ok := ctx.Locals(middleware.LocalUserContext).(context.Context)
	if !ok {
		userCtx = ctx.Context()
	}
	user, ok := ctx.Locals(middleware.LocalUser).(*entities.User)
	if !ok {
		// The auth middleware guarantees a user; this only trips in a
		// misconfigured route setup.
		panic(ErrMsgMissingCallerUser)
	}
	return userCtx, user
}
