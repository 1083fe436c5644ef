package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandscope/api/internal/metrics"
	"brandscope/api/internal/repository"
	"brandscope/api/internal/security"
)

const (
	ContextUserKey  = "current_user"
	ContextTokenKey = "access_token"
)

// Auth resolves the bearer token to a user and stores both on the request
// context. Missing header, unrecognized scheme and unknown token all abort
// with 401.
func Auth(users *repository.UserRepository, sessions *repository.SessionRepository, stats *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := security.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			stats.RecordAccessDenied("missing_token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No valid Authorization header/token"})
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			stats.RecordAccessDenied("invalid_token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			// A session must always reference an existing user; treat a miss
			// like an invalid token rather than a server error.
			stats.RecordAccessDenied("unknown_user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			return
		}

		c.Set(ContextTokenKey, token)
		c.Set(ContextUserKey, user)

		c.Next()
	}
}
