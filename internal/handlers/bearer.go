package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joblane/joblane-backend/internal/models"
	"github.com/joblane/joblane-backend/internal/services"
)

// authenticate resolves the request's bearer token to an identity. A missing
// or malformed Authorization header is rejected right here, without calling
// the provider; a present token is forwarded verbatim with the prefix
// stripped. On failure the 401 is already written and ok is false.
func authenticate(c *gin.Context, identity services.Identity) (*models.User, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}

	user, err := identity.VerifyToken(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return nil, false
	}
	return user, true
}
