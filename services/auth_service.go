package services

import (
	"candidate-notes/auth"
	"candidate-notes/contract"
	"candidate-notes/domain"
	"candidate-notes/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type userStore interface {
	CreateUser(ctx context.Context, name, email, hashedPassword string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

// Session is what a successful registration or login hands back to the client.
type Session struct {
	Token  string        `json:"token"`
	UserID domain.UserID `json:"userId"`
}

type AuthService struct {
	log         *slog.Logger
	users       userStore
	tokens      *auth.TokenManager
	credentials contract.ICredentialTracker
}

func NewAuthService(log *slog.Logger, users userStore, tokens *auth.TokenManager, credentials contract.ICredentialTracker) *AuthService {
	return &AuthService{log: log, users: users, tokens: tokens, credentials: credentials}
}

func (s *AuthService) Register(ctx context.Context, req auth.RegisterRequest, clientDescriptor string) (Session, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	// 1. Validate business rules (email format, password complexity)
	// We check this before any expensive cryptographic operation.
	if err := auth.ValidateRegister(req); err != nil {
		return Session{}, err
	}

	// 2. Hash the password using Argon2id
	// Done in the service layer to keep the repository unaware of plain passwords.
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist the user with the generated hash
	user, err := s.users.CreateUser(ctx, req.Name, req.Email, hashedPassword)
	if err != nil {
		return Session{}, err // Will propagate ErrUserAlreadyExists if email is taken
	}
	s.log.Info("User registered", "user_id", user.ID, "name", user.Name)

	// 4. Generate the initial session token
	return s.issue(user.ID, clientDescriptor)
}

func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest, clientDescriptor string) (Session, error) {
	if err := auth.ValidateLogin(req); err != nil {
		return Session{}, err
	}

	// 1. Retrieve user by email from storage
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		// Generic error to prevent user enumeration attacks
		return Session{}, errors.ErrInvalidCredentials
	}

	// 2. Compare the provided password with the stored hash
	match, err := auth.ComparePassword(req.Password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	// 3. Issue the JWT token. Older sessions of the user stay valid.
	return s.issue(user.ID, clientDescriptor)
}

// Logout forgets the credential bookkeeping. Connections already admitted stay open.
func (s *AuthService) Logout(_ context.Context, userID domain.UserID) {
	if s.credentials.ForgetCredential(userID) {
		s.log.Info("User logged out", "user_id", userID)
	}
}

func (s *AuthService) issue(userID domain.UserID, clientDescriptor string) (Session, error) {
	token, issuedAt, err := s.tokens.GenerateToken(string(userID))
	if err != nil {
		s.log.Error("Token generation failed", "user_id", userID, "error", err)
		return Session{}, errors.ErrTokenGeneration
	}
	s.credentials.TrackCredential(userID, clientDescriptor, issuedAt)
	return Session{Token: token, UserID: userID}, nil
}
