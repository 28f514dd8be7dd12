package middleware

import (
	"github.com/gin-gonic/gin"

	"doclens/auth"
	"doclens/logger"
)

// ContextOwnerID is the gin context key holding the authenticated owner.
const ContextOwnerID = "owner_id"

// OwnerAuth verifies the bearer token and stores the owner id in the
// request context. Every owner-scoped route sits behind this middleware.
func OwnerAuth(manager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		ownerID, err := manager.Parse(token)
		if err != nil {
			logger.Log.Infof("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		c.Set(ContextOwnerID, ownerID)
		c.Next()
	}
}

// OwnerID reads the authenticated owner id set by OwnerAuth.
func OwnerID(c *gin.Context) string {
	return c.GetString(ContextOwnerID)
}
