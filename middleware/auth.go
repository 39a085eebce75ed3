package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"yungwing/utils"
)

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// JWTAuthUserMiddleware authenticates a member request. The token hash
// is checked against the auth cache first; a cache miss falls back to
// plain signature validation so Redis outages degrade instead of
// locking everyone out.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		userID, isAdmin, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			abortUnauthorized(c)
			return
		}

		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + userID
		computedHash := utils.HashToken(tokenString)

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			if cachedHash != computedHash {
				// A newer login replaced this token.
				abortUnauthorized(c)
				return
			}
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
		case err == redis.Nil:
			// Expired cache entry; the signature check above already
			// vouched for the token, so re-prime the cache.
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		default:
			zap.L().Warn("auth cache unavailable", zap.Error(err))
		}

		c.Set("userID", userID)
		c.Set("isAdmin", isAdmin)
		c.Next()
	}
}

// JWTAuthAdminMiddleware authenticates an admin request via the admin
// claim. It must run after JWTAuthUserMiddleware.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("isAdmin")
		if !exists || isAdmin != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
