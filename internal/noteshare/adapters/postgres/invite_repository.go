package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"noteshare/internal/noteshare/domain/apperrors"
	"noteshare/internal/noteshare/domain/entities"
	"noteshare/internal/noteshare/ports/repositories"
	"noteshare/pkg/logger"
)

// InviteRepository implements repositories.InviteRepository over Postgres.
type InviteRepository struct {
	pool PgxPoolInterface
}

// NewInviteRepository creates a new invite repository.
func NewInviteRepository(pool PgxPoolInterface) repositories.InviteRepository {
	return &InviteRepository{pool: pool}
}

// Create persists a new pending invite.
func (r *InviteRepository) Create(ctx context.Context, invite *entities.Invite) (*entities.Invite, error) {
	log := logger.Log(ctx).With(zap.String("repository", "invite"), zap.String("method", "Create"))
	log.Debug(ctx, "creating invite", zap.String("userID", invite.UserID))

	query := `
        INSERT INTO invites (id, user_id, friend_email)
        VALUES ($1, $2, $3)
        RETURNING id, user_id, friend_email, accepted_at, created_at
    `

	var created entities.Invite
	err := r.pool.QueryRow(ctx, query, invite.ID, invite.UserID, invite.FriendEmail).Scan(
		&created.ID,
		&created.UserID,
		&created.FriendEmail,
		&created.AcceptedAt,
		&created.CreatedAt,
	)
	if err != nil {
		log.Error(ctx, "error creating invite", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error creating invite")(err)
	}

	return &created, nil
}

// GetByID loads an invite by id.
func (r *InviteRepository) GetByID(ctx context.Context, id string) (*entities.Invite, error) {
	log := logger.Log(ctx).With(zap.String("repository", "invite"), zap.String("method", "GetByID"))

	query := `
        SELECT id, user_id, friend_email, accepted_at, created_at
        FROM invites
        WHERE id = $1
    `

	var invite entities.Invite
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&invite.ID,
		&invite.UserID,
		&invite.FriendEmail,
		&invite.AcceptedAt,
		&invite.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "invite not found", zap.String("id", id))
			return nil, apperrors.New(apperrors.RecordNotFound, fmt.Sprintf("Invite %s not found", id))
		}
		log.Error(ctx, "error finding invite", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error querying invite by id")(err)
	}

	return &invite, nil
}

// MarkAccepted sets the acceptance timestamp on a pending invite.
func (r *InviteRepository) MarkAccepted(ctx context.Context, id string, acceptedAt time.Time) (*entities.Invite, error) {
	log := logger.Log(ctx).With(zap.String("repository", "invite"), zap.String("method", "MarkAccepted"))
	log.Debug(ctx, "marking invite accepted", zap.String("id", id))

	query := `
        UPDATE invites
        SET accepted_at = $1
        WHERE id = $2
        RETURNING id, user_id, friend_email, accepted_at, created_at
    `

	var updated entities.Invite
	err := r.pool.QueryRow(ctx, query, acceptedAt, id).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.FriendEmail,
		&updated.AcceptedAt,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "invite not found", zap.String("id", id))
			return nil, apperrors.New(apperrors.RecordNotFound, fmt.Sprintf("Invite %s not found", id))
		}
		log.Error(ctx, "error marking invite accepted", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error updating invite")(err)
	}

	return &updated, nil
}

// Delete removes an invite. Only used to compensate a failed invite email.
func (r *InviteRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "invite"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting invite", zap.String("id", id))

	result, err := r.pool.Exec(ctx, `DELETE FROM invites WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting invite", zap.Error(err))
		return apperrors.Convert(apperrors.Database, "error deleting invite")(err)
	}
	if result.RowsAffected() == 0 {
		log.Debug(ctx, "invite not found", zap.String("id", id))
		return apperrors.New(apperrors.RecordNotFound, fmt.Sprintf("Invite %s not found", id))
	}

	return nil
}
