package postgres

import (
	"context"

	"go.uber.org/zap"

	"noteshare/internal/noteshare/domain/apperrors"
	"noteshare/internal/noteshare/domain/entities"
	"noteshare/internal/noteshare/ports/repositories"
	"noteshare/pkg/logger"
)

// ConnectionRepository implements repositories.ConnectionRepository over
// Postgres.
type ConnectionRepository struct {
	pool PgxPoolInterface
}

// NewConnectionRepository creates a new connection repository.
func NewConnectionRepository(pool PgxPoolInterface) repositories.ConnectionRepository {
	return &ConnectionRepository{pool: pool}
}

// Create persists a new user connection.
func (r *ConnectionRepository) Create(ctx context.Context, conn *entities.UserConnection) (*entities.UserConnection, error) {
	log := logger.Log(ctx).With(zap.String("repository", "connection"), zap.String("method", "Create"))
	log.Debug(ctx, "creating connection",
		zap.String("userFirstID", conn.UserFirstID),
		zap.String("userSecondID", conn.UserSecondID))

	query := `
        INSERT INTO user_connections (id, user_first_id, user_second_id, type)
        VALUES ($1, $2, $3, $4)
        RETURNING id, user_first_id, user_second_id, type, created_at
    `

	var created entities.UserConnection
	err := r.pool.QueryRow(ctx, query, conn.ID, conn.UserFirstID, conn.UserSecondID, conn.Type).Scan(
		&created.ID,
		&created.UserFirstID,
		&created.UserSecondID,
		&created.Type,
		&created.CreatedAt,
	)
	if err != nil {
		log.Error(ctx, "error creating connection", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error creating connection")(err)
	}

	return &created, nil
}

// ListByUserID returns all connections referencing the user on either side.
func (r *ConnectionRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.UserConnection, error) {
	log := logger.Log(ctx).With(zap.String("repository", "connection"), zap.String("method", "ListByUserID"))

	query := `
        SELECT id, user_first_id, user_second_id, type, created_at
        FROM user_connections
        WHERE user_first_id = $1 OR user_second_id = $1
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error listing connections", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error listing connections")(err)
	}
	defer rows.Close()

	connections := make([]*entities.UserConnection, 0)
	for rows.Next() {
		var conn entities.UserConnection
		if err := rows.Scan(&conn.ID, &conn.UserFirstID, &conn.UserSecondID, &conn.Type, &conn.CreatedAt); err != nil {
			log.Error(ctx, "error scanning connection", zap.Error(err))
			return nil, apperrors.Convert(apperrors.Database, "error scanning connection")(err)
		}
		connections = append(connections, &conn)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating connections", zap.Error(err))
		return nil, apperrors.Convert(apperrors.Database, "error iterating connections")(err)
	}

	return connections, nil
}
