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

// UserRepository implements repositories.UserRepository over Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository creates a new user repository.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create persists a new user.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (id, auth_id, email, name, picture)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, auth_id, email, name, picture, created_at, updated_at
    `

	var created entities.User
	err := r.pool.QueryRow(ctx, query,
		user.ID, user.AuthID, user.Email, user.Name, user.Picture,
	).Scan(
		&created.ID,
		&created.AuthID,
		&created.Email,
		&created.Name,
		&created.Picture,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error creating user")(err)
	}

	return &created, nil
}

// GetByID loads a user by id, optionally expanding their board set.
func (r *UserRepository) GetByID(ctx context.Context, id string, includeBoards bool) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "GetByID"))

	query := `
        SELECT id, auth_id, email, name, picture, created_at, updated_at
        FROM users
        WHERE id = $1
    `

	user, err := r.scanUser(ctx, query, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, apperrors.New(apperrors.RecordNotFound, fmt.Sprintf("User %s not found", id))
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error querying user by id")(err)
	}

	if includeBoards {
		if err := r.loadBoards(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// GetByAuthID loads a user by external auth identifier.
func (r *UserRepository) GetByAuthID(ctx context.Context, authID string, includeBoards bool) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "GetByAuthID"))

	query := `
        SELECT id, auth_id, email, name, picture, created_at, updated_at
        FROM users
        WHERE auth_id = $1
    `

	user, err := r.scanUser(ctx, query, authID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found by auth id", zap.String("authID", authID))
			return nil, apperrors.New(apperrors.RecordNotFound, "User not found")
		}
		log.Error(ctx, "error finding user by auth id", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error querying user by auth id")(err)
	}

	if includeBoards {
		if err := r.loadBoards(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (r *UserRepository) scanUser(ctx context.Context, query string, arg any) (*entities.User, error) {
	var user entities.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.AuthID,
		&user.Email,
		&user.Name,
		&user.Picture,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) loadBoards(ctx context.Context, user *entities.User) error {
	boards, err := NewBoardRepository(r.pool).ListByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	user.Boards = boards
	return nil
}
