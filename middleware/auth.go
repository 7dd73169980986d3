package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	therapistRepo "calmora/database/repository/therapist"
	userRepo "calmora/database/repository/user"
	"calmora/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

// verifyTokenHash checks the computed hash against the auth cache, falling
// back to the provided stored hash on a cache miss, and re-primes the
// cache on success.
func verifyTokenHash(ctx context.Context, subjectID, computedHash, storedHash string) bool {
	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + subjectID

	cachedHash, err := authCache.Get(ctx, cacheKey).Result()
	if err == nil {
		if cachedHash == computedHash {
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			return true
		}
		return false
	}
	if err != redis.Nil {
		utils.GetLogger().Warn("auth cache lookup failed, falling back to stored hash", zap.Error(err))
	}

	if storedHash == "" || storedHash != computedHash {
		return false
	}
	_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
	return true
}

// JWTAuthUserMiddleware authenticates patient requests.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" || role != "patient" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		computedHash := utils.HashToken(tokenString)
		storedHash := ""
		if usr, err := repo.GetByID(userID); err == nil && usr != nil {
			storedHash = usr.TokenHash
		}
		if !verifyTokenHash(ctx, userID, computedHash, storedHash) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// JWTAuthTherapistMiddleware authenticates therapist requests.
func JWTAuthTherapistMiddleware(repo therapistRepo.TherapistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		therapistID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || therapistID == "" || role != "therapist" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		computedHash := utils.HashToken(tokenString)
		storedHash := ""
		if rec, err := repo.GetByID(therapistID); err == nil && rec != nil {
			storedHash = rec.TokenHash
		}
		if !verifyTokenHash(ctx, therapistID, computedHash, storedHash) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		c.Set("therapistID", therapistID)
		c.Next()
	}
}
