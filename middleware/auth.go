package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"homeserve/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware validates the bearer token and sets the actor's ID and
// role on the context. When the auth cache holds a token hash for the actor,
// the presented token must match it; a cache miss falls back to accepting
// any validly signed token.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		actorID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || actorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			cachedHash, err := authCache.Get(ctx, utils.AuthCachePrefix+actorID).Result()
			if err == nil && cachedHash != utils.HashToken(tokenString) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
			if err != nil && err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, accepting signed token")
			}
		}

		c.Set("actorID", actorID)
		c.Set("actorRole", role)
		c.Next()
	}
}

// RequireRole gates a route group to one role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorRole, _ := c.Get("actorRole")
		if actorRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// ActorID returns the authenticated actor's ID from the request context.
func ActorID(c *gin.Context) string {
	id, _ := c.Get("actorID")
	s, _ := id.(string)
	return s
}
