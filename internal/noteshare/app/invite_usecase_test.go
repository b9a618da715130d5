package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"noteshare/internal/noteshare/app"
	"noteshare/internal/noteshare/domain/apperrors"
	"noteshare/internal/noteshare/domain/entities"
)

func TestSendInvite(t *testing.T) {
	ctx := context.Background()

	params := app.SendInviteParams{
		BaseURL:     "https://notes.example.com",
		Name:        "Alice",
		FriendEmail: "bob@example.com",
		UserID:      "usr_1",
		UserEmail:   "alice@example.com",
	}

	t.Run("empty friend email fails before any write", func(t *testing.T) {
		invites := new(mockInviteRepository)
		email := new(mockEmailSender)
		uc := app.NewInviteUseCase(invites, new(mockConnectionRepository), new(mockUserRepository), email)

		p := params
		p.FriendEmail = ""
		err := uc.SendInvite(ctx, p)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.Validation))
		assert.EqualError(t, err, app.ErrMsgFriendEmailRequired)
		invites.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("self-invite is rejected", func(t *testing.T) {
		invites := new(mockInviteRepository)
		uc := app.NewInviteUseCase(invites, new(mockConnectionRepository), new(mockUserRepository), new(mockEmailSender))

		p := params
		p.FriendEmail = p.UserEmail
		err := uc.SendInvite(ctx, p)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.Validation))
		assert.EqualError(t, err, app.ErrMsgFriendEmailSame)
		invites.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invite is persisted and emailed", func(t *testing.T) {
		invites := new(mockInviteRepository)
		email := new(mockEmailSender)
		stored := entities.NewInvite("inv_1", "usr_1", "bob@example.com")

		invites.On("Create", ctx, mock.AnythingOfType("*entities.Invite")).Return(stored, nil)
		email.On("Send", ctx, "bob@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return(nil)

		uc := app.NewInviteUseCase(invites, new(mockConnectionRepository), new(mockUserRepository), email)
		err := uc.SendInvite(ctx, params)
		require.NoError(t, err)

		html := email.Calls[0].Arguments.String(3)
		assert.Contains(t, html, "https://notes.example.com/invite/inv_1")
		assert.Contains(t, html, "invited by Alice")
		invites.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("email failure removes the pending invite", func(t *testing.T) {
		invites := new(mockInviteRepository)
		email := new(mockEmailSender)
		stored := entities.NewInvite("inv_1", "usr_1", "bob@example.com")

		invites.On("Create", ctx, mock.AnythingOfType("*entities.Invite")).Return(stored, nil)
		email.On("Send", ctx, "bob@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return(errors.New("smtp: connection refused"))
		invites.On("Delete", ctx, "inv_1").Return(nil)

		uc := app.NewInviteUseCase(invites, new(mockConnectionRepository), new(mockUserRepository), email)
		err := uc.SendInvite(ctx, params)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to send invite email")
		invites.AssertCalled(t, "Delete", ctx, "inv_1")
	})

	t.Run("create failure is wrapped", func(t *testing.T) {
		invites := new(mockInviteRepository)
		email := new(mockEmailSender)
		invites.On("Create", ctx, mock.AnythingOfType("*entities.Invite")).
			Return(nil, apperrors.New(apperrors.Database, "error creating invite"))

		uc := app.NewInviteUseCase(invites, new(mockConnectionRepository), new(mockUserRepository), email)
		err := uc.SendInvite(ctx, params)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to create invite")
		email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAcceptInvite(t *testing.T) {
	ctx := context.Background()
	acceptedBy := app.AcceptedBy{ID: "usr_2", Email: "bob@example.com"}

	t.Run("pending invite creates a connection and marks acceptance", func(t *testing.T) {
		invites := new(mockInviteRepository)
		connections := new(mockConnectionRepository)
		users := new(mockUserRepository)

		pending := entities.NewInvite("inv_1", "usr_1", "bob@example.com")
		inviter := &entities.User{ID: "usr_1", Email: "alice@example.com", Name: "Alice"}
		conn := entities.NewConnection("con_1", "usr_1", "usr_2")
		accepted := *pending
		now := time.Now()
		accepted.AcceptedAt = &now

		invites.On("GetByID", ctx, "inv_1").Return(pending, nil)
		users.On("GetByID", ctx, "usr_1", false).Return(inviter, nil)
		connections.On("Create", ctx, mock.AnythingOfType("*entities.UserConnection")).Return(conn, nil)
		invites.On("MarkAccepted", ctx, "inv_1", mock.AnythingOfType("time.Time")).Return(&accepted, nil)

		uc := app.NewInviteUseCase(invites, connections, users, new(mockEmailSender))
		result, err := uc.AcceptInvite(ctx, "inv_1", acceptedBy)
		require.NoError(t, err)
		assert.Equal(t, inviter, result.InvitedBy)
		assert.Equal(t, "usr_1", result.Connection.UserFirstID)
		assert.Equal(t, "usr_2", result.Connection.UserSecondID)
		assert.Equal(t, entities.ConnectionTypeConnected, result.Connection.Type)
	})

	t.Run("double acceptance is a validation failure", func(t *testing.T) {
		invites := new(mockInviteRepository)
		connections := new(mockConnectionRepository)

		now := time.Now()
		done := entities.NewInvite("inv_1", "usr_1", "bob@example.com")
		done.AcceptedAt = &now
		invites.On("GetByID", ctx, "inv_1").Return(done, nil)

		uc := app.NewInviteUseCase(invites, connections, new(mockUserRepository), new(mockEmailSender))
		_, err := uc.AcceptInvite(ctx, "inv_1", acceptedBy)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.Validation))
		assert.EqualError(t, err, "Invite inv_1 has already been accepted")
		connections.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		invites.AssertNotCalled(t, "MarkAccepted", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown invite propagates RecordNotFound", func(t *testing.T) {
		invites := new(mockInviteRepository)
		notFound := apperrors.New(apperrors.RecordNotFound, "Invite inv_9 not found")
		invites.On("GetByID", ctx, "inv_9").Return(nil, notFound)

		uc := app.NewInviteUseCase(invites, new(mockConnectionRepository), new(mockUserRepository), new(mockEmailSender))
		_, err := uc.AcceptInvite(ctx, "inv_9", acceptedBy)
		require.Error(t, err)
		assert.Equal(t, notFound, err)
	})

	t.Run("connection failure leaves the invite pending", func(t *testing.T) {
		invites := new(mockInviteRepository)
		connections := new(mockConnectionRepository)
		users := new(mockUserRepository)

		pending := entities.NewInvite("inv_1", "usr_1", "bob@example.com")
		invites.On("GetByID", ctx, "inv_1").Return(pending, nil)
		users.On("GetByID", ctx, "usr_1", false).Return(&entities.User{ID: "usr_1"}, nil)
		connections.On("Create", ctx, mock.AnythingOfType("*entities.UserConnection")).
			Return(nil, apperrors.New(apperrors.Database, "error creating connection"))

		uc := app.NewInviteUseCase(invites, connections, users, new(mockEmailSender))
		_, err := uc.AcceptInvite(ctx, "inv_1", acceptedBy)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to create connection")
		invites.AssertNotCalled(t, "MarkAccepted", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetFriends(t *testing.T) {
	ctx := context.Background()

	connections := new(mockConnectionRepository)
	conns := []*entities.UserConnection{
		entities.NewConnection("con_1", "usr_1", "usr_2"),
		entities.NewConnection("con_2", "usr_3", "usr_1"),
	}
	connections.On("ListByUserID", ctx, "usr_1").Return(conns, nil)

	uc := app.NewInviteUseCase(new(mockInviteRepository), connections, new(mockUserRepository), new(mockEmailSender))
	got, err := uc.GetFriends(ctx, "usr_1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, c := range got {
		assert.True(t, c.Involves("usr_1"))
	}
}
