package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/societyhub/societyhub-api/internal/config"
	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/repository"
)

// AuthService handles authentication: password verification and token
// issuance. Tokens are HS256 JWTs carrying the username as subject.
type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoginResult represents the result of a login attempt
type LoginResult struct {
	Token     string              `json:"token"`
	TokenType string              `json:"token_type"`
	User      models.UserResponse `json:"user"`
}

// Login authenticates a user by username and password. Wrong password and
// inactive account both fail with the same unauthorized error so callers
// cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if !VerifyPassword(password, user.HashedPassword) {
		return nil, ErrUnauthorized
	}

	if !user.IsActive {
		return nil, ErrUnauthorized
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, errors.New("failed to sign token")
	}

	return &LoginResult{
		Token:     token,
		TokenType: "bearer",
		User:      user.ToResponse(),
	}, nil
}

// IssueToken creates a signed JWT for a user with the configured expiry
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     user.Username,
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     now.Add(time.Duration(s.cfg.JWTExpirationMinutes) * time.Minute).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// HashPassword hashes a password using bcrypt. The salt is generated per
// call, so the same plaintext never produces the same hash twice.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword compares a password with a hash. bcrypt's comparison is
// constant-time over the digest.
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
