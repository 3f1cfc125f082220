package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "campuscare/database/repository/user"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware authenticates requests with a Bearer token. The token
// hash must match the one stored on the account; validated hashes are cached
// in Redis to avoid a database round-trip on every request. With optional set,
// an absent or invalid token passes through without a user identity instead
// of aborting.
func JWTAuthUserMiddleware(repo userRepo.UserRepository, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		reject := func() {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			reject()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			reject()
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			reject()
			return
		}
		computedHash := utils.HashToken(tokenString)

		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					reject()
					return
				}
				authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL)
				c.Set("userID", userID)
				c.Next()
				return
			}
			if err != redis.Nil {
				zap.L().Warn("Auth cache lookup failed, falling back to database", zap.Error(err))
			}
		}

		// Cache miss: the stored token hash is the source of truth.
		u, err := repo.GetByID(ctx, userID)
		if err != nil || u == nil || u.TokenHash == "" || u.TokenHash != computedHash {
			reject()
			return
		}

		if authCache != nil {
			if err := authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err(); err != nil {
				zap.L().Warn("Failed to prime auth cache", zap.Error(err))
			}
		}
		c.Set("userID", userID)
		c.Next()
	}
}
