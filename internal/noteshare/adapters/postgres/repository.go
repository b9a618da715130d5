// Package postgres provides PostgreSQL implementations of the repositories.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"noteshare/internal/noteshare/ports/repositories"
)

// PgxPoolInterface abstracts the pgx pool so repositories can run against
// pgxmock in tests.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// RepositoryFactory builds the repositories over a shared pool.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory creates a new repository factory.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// UserRepository returns the user repository.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.pool)
}

// BoardRepository returns the board repository.
func (f *RepositoryFactory) BoardRepository() repositories.BoardRepository {
	return NewBoardRepository(f.pool)
}

// NoteRepository returns the note repository.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return NewNoteRepository(f.pool)
}

// InviteRepository returns the invite repository.
func (f *RepositoryFactory) InviteRepository() repositories.InviteRepository {
	return NewInviteRepository(f.pool)
}

// ConnectionRepository returns the connection repository.
func (f *RepositoryFactory) ConnectionRepository() repositories.ConnectionRepository {
	return NewConnectionRepository(f.pool)
}
