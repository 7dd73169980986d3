package user

import (
	"context"
	"fmt"
	"time"

	"calmora/models"
	"calmora/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is how long an issued patient token stays valid.
const tokenDuration = 72 * time.Hour

// RegisterUser creates a patient account and signs it in.
func (s *DefaultUserService) RegisterUser(data models.UserRegistrationData) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check existing email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userRec := &models.User{
		ID:           uuid.New().String(),
		Username:     data.Username,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := s.Repo.Create(userRec); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(userRec)
}

// AuthenticateUser verifies credentials and issues a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if !userRec.Active {
		return nil, fmt.Errorf("this account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(userRec)
}

// issueToken generates a JWT, records its hash on the user document, and
// primes the auth cache.
func (s *DefaultUserService) issueToken(userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, "patient", tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(userRec.ID, bson.M{"token_hash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	return &AuthResponse{
		ID:          userRec.ID,
		Username:    userRec.Username,
		Email:       userRec.Email,
		PhoneNumber: userRec.PhoneNumber,
		Token:       token,
	}, nil
}

// RevokeUserAuthToken clears the stored token hash and auth cache entry.
func (s *DefaultUserService) RevokeUserAuthToken(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("RevokeUserAuthToken: failed to clear auth cache", zap.Error(err))
	}
	return nil
}

// UpdateUserPassword rotates the password after verifying the current one.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return fmt.Errorf("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"password_hash": string(hash)}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	// Invalidate any outstanding token.
	return s.RevokeUserAuthToken(userID)
}
