package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"chat-cli/auth"
	"chat-cli/errors"
	"chat-cli/repositories"
)

type IAuthService interface {
	Register(ctx context.Context, email, password, fullName string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Verify(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (string, error)
}

type AuthService struct {
	log            *slog.Logger
	userRepository repositories.IUserRepository
	signingKey     []byte
	tokenDuration  time.Duration
}

func NewAuthService(log *slog.Logger, repo repositories.IUserRepository, signingKey []byte, tokenDuration time.Duration) *AuthService {
	return &AuthService{
		log:            log,
		userRepository: repo,
		signingKey:     signingKey,
		tokenDuration:  tokenDuration,
	}
}

// Register creates an account and returns its first session token.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	// Validation comes before the expensive hashing.
	if err := auth.ValidateRegister(auth.RegisterRequest{Email: email, Password: password, FullName: fullName}); err != nil {
		return "", err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.userRepository.CreateUser(email, hashedPassword, fullName)
	if err != nil {
		return "", err
	}
	s.log.Info("Account registered", "user", userID)

	return s.issue(userID)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		// Same answer for unknown e-mails and wrong passwords.
		if !stderrors.Is(err, errors.ErrUserNotFound) {
			s.log.Warn("User lookup failed", "error", err)
		}
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	return s.issue(user.ID)
}

// Verify implements auth.Authenticator.
func (s *AuthService) Verify(ctx context.Context, token string) error {
	_, err := s.Authenticate(ctx, token)
	return err
}

// Authenticate returns the user a valid session token belongs to. Tokens of
// deleted accounts are rejected.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	claims, err := auth.ValidateToken(s.signingKey, token)
	if err != nil {
		return "", err
	}
	if _, err = s.userRepository.GetUser(claims.UserID); err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return "", errors.ErrInvalidToken
		}
		return "", err
	}
	return claims.UserID, nil
}

func (s *AuthService) issue(userID string) (string, error) {
	token, err := auth.GenerateToken(s.signingKey, userID, s.tokenDuration)
	if err != nil {
		s.log.Error("Token signing failed", "error", err)
		return "", errors.ErrTokenGeneration
	}
	return token, nil
}
