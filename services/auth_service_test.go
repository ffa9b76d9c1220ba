package services

import (
	"candidate-notes/auth"
	"candidate-notes/domain"
	"candidate-notes/errors"
	"candidate-notes/mocks"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewTokenManager("test-secret")

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		tracker := mocks.NewMockICredentialTracker(ctrl)
		svc := NewAuthService(slog.Default(), mockRepo, tokens, tracker)

		// Expect CreateUser to be called with a hashed password (not the plain one)
		mockRepo.EXPECT().
			CreateUser(gomock.Any(), "dana", "test@example.com", gomock.Not("ComplexPass123!")).
			Return(domain.User{ID: "user-uuid", Name: "dana"}, nil).
			Times(1)
		tracker.EXPECT().TrackCredential(domain.UserID("user-uuid"), "firefox", gomock.Any())

		session, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     " dana ",
			Email:    "test@example.com",
			Password: "ComplexPass123!",
		}, "firefox")

		req.NoError(err)
		req.NotEmpty(session.Token)
		req.Equal(domain.UserID("user-uuid"), session.UserID)

		claims, err := tokens.ValidateToken(session.Token)
		req.NoError(err)
		req.Equal("user-uuid", claims.UserID)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		tracker := mocks.NewMockICredentialTracker(ctrl)
		svc := NewAuthService(slog.Default(), mockRepo, tokens, tracker)

		// Repository should NEVER be called
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		session, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "dana",
			Email:    "test@example.com",
			Password: "simplepassword",
		}, "firefox")

		req.ErrorIs(err, errors.ErrInvalidPassword)
		req.Empty(session.Token)
	})

	t.Run("should fail when user already exists in repository", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		tracker := mocks.NewMockICredentialTracker(ctrl)
		svc := NewAuthService(slog.Default(), mockRepo, tokens, tracker)

		mockRepo.EXPECT().
			CreateUser(gomock.Any(), "dana", "duplicate@example.com", gomock.Any()).
			Return(domain.User{}, errors.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "dana",
			Email:    "duplicate@example.com",
			Password: "ComplexPass123!",
		}, "firefox")

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewTokenManager("test-secret")
	hash, err := auth.HashPassword("ComplexPass123!")
	require.NoError(t, err)
	dana := domain.User{ID: "u-dana", Name: "dana", Email: "dana@example.com", PasswordHash: hash}

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		tracker := mocks.NewMockICredentialTracker(ctrl)
		svc := NewAuthService(slog.Default(), mockRepo, tokens, tracker)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "dana@example.com").Return(dana, nil)
		tracker.EXPECT().TrackCredential(dana.ID, "phone", gomock.Any())

		session, err := svc.Login(ctx, auth.LoginRequest{Email: "dana@example.com", Password: "ComplexPass123!"}, "phone")

		req.NoError(err)
		req.Equal(dana.ID, session.UserID)
		req.NotEmpty(session.Token)
	})

	t.Run("should fail with a wrong password", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		tracker := mocks.NewMockICredentialTracker(ctrl)
		svc := NewAuthService(slog.Default(), mockRepo, tokens, tracker)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "dana@example.com").Return(dana, nil)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "dana@example.com", Password: "WrongPass123!"}, "phone")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should not reveal that the user does not exist", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		tracker := mocks.NewMockICredentialTracker(ctrl)
		svc := NewAuthService(slog.Default(), mockRepo, tokens, tracker)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(domain.User{}, errors.ErrUserNotFound)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "ComplexPass123!"}, "phone")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := mocks.NewMockICredentialTracker(ctrl)
	svc := NewAuthService(slog.Default(), mocks.NewMockIUserRepository(ctrl), auth.NewTokenManager("s"), tracker)

	tracker.EXPECT().ForgetCredential(domain.UserID("u-dana")).Return(true)

	svc.Logout(context.Background(), "u-dana")
}
