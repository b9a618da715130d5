package repositories

import (
	"context"
	"time"

	"noteshare/internal/noteshare/domain/entities"
)

// InviteRepository persists invites. Invites are created pending and
// mutated exactly once, when MarkAccepted sets the acceptance timestamp.
type InviteRepository interface {
	Create(ctx context.Context, invite *entities.Invite) (*entities.Invite, error)
	GetByID(ctx context.Context, id string) (*entities.Invite, error)
	MarkAccepted(ctx context.Context, id string, acceptedAt time.Time) (*entities.Invite, error)
	// Delete removes a pending invite; used only to compensate a failed
	// invite email.
	Delete(ctx context.Context, id string) error
}

// ConnectionRepository persists user connections.
type ConnectionRepository interface {
	Create(ctx context.Context, conn *entities.UserConnection) (*entities.UserConnection, error)
	ListByUserID(ctx context.Context, userID string) ([]*entities.UserConnection, error)
}
