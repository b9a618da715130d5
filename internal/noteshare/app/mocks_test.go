package app_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"noteshare/internal/noteshare/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string, includeBoards bool) (*entities.User, error) {
	args := m.Called(ctx, id, includeBoards)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetByAuthID(ctx context.Context, authID string, includeBoards bool) (*entities.User, error) {
	args := m.Called(ctx, authID, includeBoards)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockBoardRepository struct {
	mock.Mock
}

func (m *mockBoardRepository) Create(ctx context.Context, board *entities.Board) (*entities.Board, error) {
	args := m.Called(ctx, board)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Board), args.Error(1)
}

func (m *mockBoardRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Board, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Board), args.Error(1)
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, id string) (*entities.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) ListByBoardID(ctx context.Context, boardID string) ([]*entities.Note, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockInviteRepository struct {
	mock.Mock
}

func (m *mockInviteRepository) Create(ctx context.Context, invite *entities.Invite) (*entities.Invite, error) {
	args := m.Called(ctx, invite)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invite), args.Error(1)
}

func (m *mockInviteRepository) GetByID(ctx context.Context, id string) (*entities.Invite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invite), args.Error(1)
}

func (m *mockInviteRepository) MarkAccepted(ctx context.Context, id string, acceptedAt time.Time) (*entities.Invite, error) {
	args := m.Called(ctx, id, acceptedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invite), args.Error(1)
}

func (m *mockInviteRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockConnectionRepository struct {
	mock.Mock
}

func (m *mockConnectionRepository) Create(ctx context.Context, conn *entities.UserConnection) (*entities.UserConnection, error) {
	args := m.Called(ctx, conn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserConnection), args.Error(1)
}

func (m *mockConnectionRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.UserConnection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserConnection), args.Error(1)
}

type mockEmailSender struct {
	mock.Mock
}

func (m *mockEmailSender) Send(ctx context.Context, to, subject, html string) error {
	return m.Called(ctx, to, subject, html).Error(0)
}

type mockAuthClient struct {
	mock.Mock
}

func (m *mockAuthClient) FetchAuthUser(ctx context.Context, accessToken string) (*entities.AuthUserProfile, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthUserProfile), args.Error(1)
}

type mockProfileCache struct {
	mock.Mock
}

func (m *mockProfileCache) Get(ctx context.Context, accessToken string) (*entities.AuthUserProfile, bool) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*entities.AuthUserProfile), args.Bool(1)
}

func (m *mockProfileCache) Set(ctx context.Context, accessToken string, profile *entities.AuthUserProfile, ttl time.Duration) {
	m.Called(ctx, accessToken, profile, ttl)
}
