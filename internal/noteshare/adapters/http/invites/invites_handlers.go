// Package invites contains the HTTP handlers of the invite workflow.
package invites

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
	LogHandlerSendInvite   = "handling send invite request"
	LogHandlerAcceptInvite = "handling accept invite request"
	LogHandlerGetFriends   = "handling get friends request"

	ErrMsgInvalidInviteID   = "Invite id is required"
	ErrMsgUnparsableInvite  = "Unable to parse invite input"
	ErrMsgMissingCallerUser = "caller user missing from request context"
)

// Handler serves the invite and friends resources.
type Handler struct {
	invites *app.InviteUseCase
	baseURL string
}

// NewHandler creates a new invites handler. baseURL is the public address
// embedded in invite-acceptance links.
func NewHandler(invites *app.InviteUseCase, baseURL string) *Handler {
	return &Handler{invites: invites, baseURL: baseURL}
}

// SendInvite handles POST /api/invites.
func (h *Handler) SendInvite(ctx fiber.Ctx) error {
	userCtx, user := caller(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.SendInvite"))
	log.Debug(userCtx, LogHandlerSendInvite)

	var input dto.SendInviteInput
	if err := ctx.Bind().Body(&input); err != nil {
		log.Debug(userCtx, ErrMsgUnparsableInvite, zap.Error(err))
		return apierrors.Respond(ctx, apperrors.New(apperrors.Validation, ErrMsgUnparsableInvite))
	}

	err := h.invites.SendInvite(userCtx, app.SendInviteParams{
		BaseURL:     h.baseURL,
		Name:        user.Name,
		FriendEmail: input.FriendEmail,
		UserID:      user.ID,
		UserEmail:   user.Email,
	})
	if err != nil {
		log.Debug(userCtx, "failed to send invite", zap.Error(err))
		return apierrors.Respond(ctx, err)
	}

	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "sent"})
}

// AcceptInvite handles POST /api/invites/:invite_id/accept.
func (h *Handler) AcceptInvite(ctx fiber.Ctx) error {
	userCtx, user := caller(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.AcceptInvite"))
	log.Debug(userCtx, LogHandlerAcceptInvite)

	inviteID := ctx.Params("invite_id")
	if inviteID == "" {
		return apierrors.Respond(ctx, apperrors.New(apperrors.Validation, ErrMsgInvalidInviteID))
	}

	result, err := h.invites.AcceptInvite(userCtx, inviteID, app.AcceptedBy{
		ID:    user.ID,
		Email: user.Email,
	})
	if err != nil {
		log.Debug(userCtx, "failed to accept invite", zap.Error(err))
		return apierrors.Respond(ctx, err)
	}

	return ctx.JSON(result)
}

// GetFriends handles GET /api/friends.
func (h *Handler) GetFriends(ctx fiber.Ctx) error {
	userCtx, user := caller(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.GetFriends"))
	log.Debug(userCtx, LogHandlerGetFriends)

	connections, err := h.invites.GetFriends(userCtx, user.ID)
	if err != nil {
		log.Debug(userCtx, "failed to list friends", zap.Error(err))
		return apierrors.Respond(ctx, err)
	}

	return ctx.JSON(connections)
}

func caller(ctx fiber.Ctx) (context.Context, *entities.User) {
	userCtx, ok := ctx.Locals(middleware.LocalUserContext).(context.Context)
	if !ok {
		userCtx = ctx.Context()
	}
	user, ok := ctx.Locals(middleware.LocalUser).(*entities.User)
	if !ok {
		panic(ErrMsgMissingCallerUser)
	}
	return userCtx, user
}
