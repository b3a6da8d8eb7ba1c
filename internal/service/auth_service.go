package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"femaqua-be/internal/apperrors"
	"femaqua-be/internal/entities"
	"femaqua-be/internal/repository"
)

// tokenBytes is the amount of randomness in every bearer token
const tokenBytes = 32

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*entities.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*entities.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.TokenRepository
	bcryptCost int
	tokenTTL   time.Duration // 0 means tokens never expire
	dummyHash  []byte
	now        func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, bcryptCost int, tokenTTL time.Duration) AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	// Compared against when the email is unknown, so login takes the same
	// time whichever credential was wrong.
	dummy, err := bcrypt.GenerateFromPassword([]byte("femaqua-dummy-password"), bcryptCost)
	if err != nil {
		panic(fmt.Sprintf("failed to prepare dummy hash: %v", err))
	}

	return &authService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		bcryptCost: bcryptCost,
		tokenTTL:   tokenTTL,
		dummyHash:  dummy,
		now:        time.Now,
	}
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, name, email, password string) (*entities.User, error) {
	// Check if user already exists
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, name, email, string(hashedPassword))
	if errors.Is(err, repository.ErrDuplicate) {
		// lost a race with a concurrent registration
		return nil, apperrors.ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a new plaintext bearer token
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.issueToken(ctx, user.ID)
}

func (s *authService) issueToken(ctx context.Context, userID string) (string, error) {
	secret := make([]byte, tokenBytes)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	id := uuid.NewString()
	plain := id + "|" + base64.RawURLEncoding.EncodeToString(secret)

	now := s.now().UTC()
	token := &entities.AccessToken{
		ID:        id,
		UserID:    userID,
		TokenHash: HashToken(plain),
		CreatedAt: now,
	}
	if s.tokenTTL > 0 {
		expires := now.Add(s.tokenTTL)
		token.ExpiresAt = &expires
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	return plain, nil
}

// Authenticate resolves the user bound to a bearer token
func (s *authService) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	hash := HashToken(token)
	binding, err := s.tokenRepo.FindByHash(ctx, hash)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	now := s.now().UTC()
	if binding.IsExpired(now) {
		if err := s.tokenRepo.DeleteByHash(ctx, hash); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to delete expired token: %w", err)
		}
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, binding.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.tokenRepo.Touch(ctx, hash, now); err != nil {
		return nil, fmt.Errorf("failed to touch token: %w", err)
	}

	return user, nil
}

// Logout revokes the given token only. The user's other tokens stay valid.
func (s *authService) Logout(ctx context.Context, token string) error {
	err := s.tokenRepo.DeleteByHash(ctx, HashToken(strings.TrimSpace(token)))
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrUnauthenticated
	}
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// HashToken returns the hex SHA-256 digest under which a token is stored
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
