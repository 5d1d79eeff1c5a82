package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/quillforge/creator-api/pkg/creator_api/models"
)

const identityKey = "identity"

// RequireAuth extracts the caller's identity from the bearer token. The
// token signature is validated upstream by the identity gateway; here we
// only read the claims. Requests without a usable subject never reach a
// handler.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		id, ok := identityFromToken(tokenStr)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access token"})
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// SetIdentity stores an identity on the context the way RequireAuth
// does. Handlers under test get their caller through this.
func SetIdentity(c *gin.Context, id models.Identity) {
	c.Set(identityKey, id)
}

// Identity returns the authenticated caller set by RequireAuth.
func Identity(c *gin.Context) models.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(models.Identity); ok {
			return id
		}
	}
	return models.Identity{}
}

func identityFromToken(tokenStr string) (models.Identity, bool) {
	token, _, err := new(jwt.Parser).ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return models.Identity{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, false
	}

	sub, ok := claims["sub"].(string)
	if !ok || strings.TrimSpace(sub) == "" {
		return models.Identity{}, false
	}

	plan := models.PlanFree
	if p, ok := claims["plan"].(string); ok && p != "" {
		plan = p
	}

	return models.Identity{UserId: sub, Plan: plan}, true
}
