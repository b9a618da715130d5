// Package app implements the business logic of the notes-sharing service.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"noteshare/internal/noteshare/domain/apperrors"
	"noteshare/internal/noteshare/domain/entities"
	"noteshare/internal/noteshare/ports/repositories"
	"noteshare/internal/noteshare/ports/services"
	"noteshare/pkg/identity"
	"noteshare/pkg/logger"
)

// Messages for profile resolution failures.
const (
	ErrMsgFetchAuthUser = "Failed to fetch user with access token"
)

// defaultProfileTTL bounds how long a resolved auth profile stays cached.
const defaultProfileTTL = 5 * time.Minute

// UserUseCase implements user resolution and the ownership predicates.
type UserUseCase struct {
	users      repositories.UserRepository
	boards     repositories.BoardRepository
	authClient services.AuthClient
	cache      services.ProfileCache
	profileTTL time.Duration
}

// NewUserUseCase creates a new UserUseCase. The cache may be nil, in which
// case every profile resolution goes to the auth provider.
func NewUserUseCase(
	users repositories.UserRepository,
	boards repositories.BoardRepository,
	authClient services.AuthClient,
	cache services.ProfileCache,
) *UserUseCase {
	return &UserUseCase{
		users:      users,
		boards:     boards,
		authClient: authClient,
		cache:      cache,
		profileTTL: defaultProfileTTL,
	}
}

// IsBoardOwner succeeds iff the board appears in the user's loaded board
// set. The caller must have loaded the user with boards.
func (uc *UserUseCase) IsBoardOwner(user *entities.User, board *entities.Board) error {
	if user.OwnsBoard(board.ID) {
		return nil
	}
	return apperrors.New(apperrors.Authorization,
		fmt.Sprintf("User %s is not the owner of board %s", user.ID, board.ID))
}

// IsNoteOwner succeeds iff the note's board is among the user's loaded
// boards. Ownership is a join through the board, not a direct note-to-user
// reference.
func (uc *UserUseCase) IsNoteOwner(user *entities.User, note *entities.Note) error {
	if user.OwnsBoard(note.BoardID) {
		return nil
	}
	return apperrors.New(apperrors.Authorization,
		fmt.Sprintf("User %s is not the owner of note %s", user.ID, note.ID))
}

// CurrentBoardForNote finds the board within the user's boards matching the
// note's board id.
func (uc *UserUseCase) CurrentBoardForNote(user *entities.User, note *entities.Note) (*entities.Board, error) {
	for i := range user.Boards {
		if user.Boards[i].ID == note.BoardID {
			return &user.Boards[i], nil
		}
	}
	return nil, apperrors.New(apperrors.RecordNotFound,
		fmt.Sprintf("Board %s not found", note.BoardID))
}

// GetOrCreateUser looks up a user by external auth identifier and creates
// one from the supplied profile on RecordNotFound. Any other lookup failure
// propagates unchanged.
func (uc *UserUseCase) GetOrCreateUser(ctx context.Context, authID string, profile *entities.AuthUserProfile) (*entities.User, error) {
	user, err := uc.users.GetByAuthID(ctx, authID, false)
	if err == nil {
		return user, nil
	}
	if !apperrors.IsKind(err, apperrors.RecordNotFound) {
		return nil, err
	}
	return uc.createUser(ctx, profile)
}

// GetOrCreateUserByAuth is GetOrCreateUser for callers that only hold an
// access token: on RecordNotFound the profile is fetched from the auth
// provider first.
func (uc *UserUseCase) GetOrCreateUserByAuth(ctx context.Context, accessToken, authID string) (*entities.User, error) {
	user, err := uc.users.GetByAuthID(ctx, authID, false)
	if err == nil {
		return user, nil
	}
	if !apperrors.IsKind(err, apperrors.RecordNotFound) {
		return nil, err
	}

	profile, err := uc.resolveProfile(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return uc.createUser(ctx, profile)
}

// GetUser loads a user by id, optionally with the full board set.
func (uc *UserUseCase) GetUser(ctx context.Context, id string, includeBoards bool) (*entities.User, error) {
	return uc.users.GetByID(ctx, id, includeBoards)
}

// resolveProfile fetches the auth profile for the token, consulting the
// cache first. A failed provider call surfaces as a FetchError.
func (uc *UserUseCase) resolveProfile(ctx context.Context, accessToken string) (*entities.AuthUserProfile, error) {
	if uc.cache != nil {
		if profile, ok := uc.cache.Get(ctx, accessToken); ok {
			return profile, nil
		}
	}

	profile, err := uc.authClient.FetchAuthUser(ctx, accessToken)
	if err != nil {
		return nil, apperrors.Convert(apperrors.Fetch, ErrMsgFetchAuthUser)(err)
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, accessToken, profile, uc.profileTTL)
	}
	return profile, nil
}

// createUser provisions a user from an auth profile together with their
// default board.
func (uc *UserUseCase) createUser(ctx context.Context, profile *entities.AuthUserProfile) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserUseCase.createUser"))

	user, err := uc.users.Create(ctx, entities.NewUser(identity.GenerateID(entities.UserIDPrefix), profile))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	board, err := uc.boards.Create(ctx, entities.NewBoard(
		identity.GenerateID(entities.BoardIDPrefix), user.ID, entities.DefaultBoardName))
	if err != nil {
		return nil, fmt.Errorf("failed to create default board: %w", err)
	}
	user.Boards = append(user.Boards, *board)

	log.Info(ctx, "user provisioned on first login", zap.String("userID", user.ID))
	return user, nil
}
