package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"techstore-admin/models"
)

// Context keys set by RequireSession.
const (
	UserKey  = "user"
	TokenKey = "token"
)

// TokenCookie is the cookie the admin UI stores the token in.
const TokenCookie = "token"

// SessionLookup resolves a token to its user.
type SessionLookup interface {
	Lookup(token string) (models.User, bool)
}

// RequireSession rejects requests without a known token. The token is read from
// the Authorization bearer header, then from the token cookie.
func RequireSession(sessions SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(TokenCookie)
		}

		user, ok := sessions.Lookup(token)
		if token == "" || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(UserKey, user)
		c.Set(TokenKey, token)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
