package middleware

import (
	"net/http"

	"learnplatform/internal/application/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "userId"

// Identity requires the X-User-Id header. The platform in front of the
// API owns real authentication; the header is the caller's identity.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-Id")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User ID required"})
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// AdminOnly runs after Identity and rejects non-admin callers before
// any handler mutation.
func AdminOnly(guard *usecase.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, err := guard.IsAdmin(c.Request.Context(), UserID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user role"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}

// UserID returns the identity set by Identity.
func UserID(c *gin.Context) uuid.UUID {
	id, _ := c.MustGet(userIDKey).(uuid.UUID)
	return id
}
