package auth

import (
	"context"
	"errors"
	"time"

	userRepo "campushub/database/repository/user"
	"campushub/models"
	"campushub/utils"

	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService owns login, logout, and profile lookup.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

// DefaultAuthService verifies bcrypt credentials against the user store and
// mints JWTs whose hashes are cached in Redis for fast middleware checks.
type DefaultAuthService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(utils.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, tokenTTL)
	if err != nil {
		return nil, err
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, user.ID, tokenHash); err != nil {
		return nil, err
	}
	// Cache the hash; middleware falls back to the user document on a miss.
	if cache := utils.GetAuthCacheClient(); cache != nil {
		cacheKey := utils.AuthCachePrefix + user.ID
		_ = cache.Set(ctx, cacheKey, tokenHash, time.Hour).Err()
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

// Logout revokes the user's current token by clearing the stored hash.
func (s *DefaultAuthService) Logout(ctx context.Context, userID string) error {
	if err := s.Repo.SetTokenHash(ctx, userID, ""); err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return err
	}
	if cache := utils.GetAuthCacheClient(); cache != nil {
		cacheKey := utils.AuthCachePrefix + userID
		return cache.Del(ctx, cacheKey).Err()
	}
	return nil
}

func (s *DefaultAuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
