package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"noteshare/internal/noteshare/domain/apperrors"
	"noteshare/internal/noteshare/domain/entities"
	"noteshare/internal/noteshare/ports/repositories"
	"noteshare/internal/noteshare/ports/services"
	"noteshare/pkg/identity"
	"noteshare/pkg/logger"
)

// Validation messages for invite issuance.
const (
	ErrMsgFriendEmailRequired = "Friend email is required"
	ErrMsgFriendEmailSame     = "Friend email should be different to current user email"
)

const inviteEmailSubject = "You have been invited to share notes"

// SendInviteParams carries everything needed to issue an invite.
type SendInviteParams struct {
	BaseURL     string
	Name        string
	FriendEmail string
	UserID      string
	UserEmail   string
}

// AcceptedBy identifies the user accepting an invite.
type AcceptedBy struct {
	ID    string
	Email string
}

// AcceptInviteResult is returned on successful acceptance.
type AcceptInviteResult struct {
	Connection *entities.UserConnection `json:"connection"`
	InvitedBy  *entities.User           `json:"invited_by"`
}

// InviteUseCase implements the invite issuance and acceptance workflow.
type InviteUseCase struct {
	invites     repositories.InviteRepository
	connections repositories.ConnectionRepository
	users       repositories.UserRepository
	email       services.EmailSender
	now         func() time.Time
}

// NewInviteUseCase creates a new InviteUseCase.
func NewInviteUseCase(
	invites repositories.InviteRepository,
	connections repositories.ConnectionRepository,
	users repositories.UserRepository,
	email services.EmailSender,
) *InviteUseCase {
	return &InviteUseCase{
		invites:     invites,
		connections: connections,
		users:       users,
		email:       email,
		now:         time.Now,
	}
}

// SendInvite validates the request, persists a pending invite and emails an
// acceptance link to the friend. Validation fails before any write; a
// failed email send deletes the freshly created invite so no orphaned
// pending invite persists.
func (uc *InviteUseCase) SendInvite(ctx context.Context, params SendInviteParams) error {
	log := logger.Log(ctx).With(zap.String("method", "InviteUseCase.SendInvite"))

	if err := validateSendInvite(params); err != nil {
		return err
	}

	invite, err := uc.invites.Create(ctx,
		entities.NewInvite(identity.GenerateID(entities.InviteIDPrefix), params.UserID, params.FriendEmail))
	if err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}

	inviteLink := fmt.Sprintf("%s/invite/%s", strings.TrimSuffix(params.BaseURL, "/"), invite.ID)
	html := fmt.Sprintf(`Hello %s.
			<p>You have been invited by %s to join them in collaborating on Notes.</p>
			<p>Accept <a href="%s">invite</a> to get started now.</p>`,
		params.FriendEmail, params.Name, inviteLink)

	if err := uc.email.Send(ctx, params.FriendEmail, inviteEmailSubject, html); err != nil {
		log.Error(ctx, "invite email failed, removing pending invite",
			zap.String("inviteID", invite.ID), zap.Error(err))
		if delErr := uc.invites.Delete(ctx, invite.ID); delErr != nil {
			log.Error(ctx, "failed to remove pending invite after email failure",
				zap.String("inviteID", invite.ID), zap.Error(delErr))
		}
		return fmt.Errorf("failed to send invite email: %w", err)
	}

	log.Info(ctx, "invite sent", zap.String("inviteID", invite.ID))
	return nil
}

// AcceptInvite loads a pending invite, connects the inviter with the
// accepter and marks the invite accepted. Accepting an already-accepted
// invite is a validation failure; acceptance is deliberately not
// idempotent.
func (uc *InviteUseCase) AcceptInvite(ctx context.Context, inviteID string, acceptedBy AcceptedBy) (*AcceptInviteResult, error) {
	log := logger.Log(ctx).With(zap.String("method", "InviteUseCase.AcceptInvite"))

	invite, err := uc.invites.GetByID(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	if invite.Accepted() {
		return nil, apperrors.New(apperrors.Validation,
			fmt.Sprintf("Invite %s has already been accepted", invite.ID))
	}

	// The inviter is loaded without boards; acceptance never needs them.
	invitedBy, err := uc.users.GetByID(ctx, invite.UserID, false)
	if err != nil {
		return nil, err
	}

	connection, err := uc.connections.Create(ctx,
		entities.NewConnection(identity.GenerateID(entities.ConnectionIDPrefix), invite.UserID, acceptedBy.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	if _, err := uc.invites.MarkAccepted(ctx, invite.ID, uc.now()); err != nil {
		return nil, fmt.Errorf("failed to mark invite accepted: %w", err)
	}

	log.Info(ctx, "invite accepted",
		zap.String("inviteID", invite.ID),
		zap.String("connectionID", connection.ID))

	return &AcceptInviteResult{Connection: connection, InvitedBy: invitedBy}, nil
}

// GetFriends returns all connections referencing the given user id.
func (uc *InviteUseCase) GetFriends(ctx context.Context, userID string) ([]*entities.UserConnection, error) {
	return uc.connections.ListByUserID(ctx, userID)
}

func validateSendInvite(params SendInviteParams) error {
	if params.FriendEmail == "" {
		return apperrors.New(apperrors.Validation, ErrMsgFriendEmailRequired)
	}
	if params.FriendEmail == params.UserEmail {
		return apperrors.New(apperrors.Validation, ErrMsgFriendEmailSame)
	}
	return nil
}
