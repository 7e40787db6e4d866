package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rizkypratama/havenly/pkg/helpers"
	"github.com/rizkypratama/havenly/pkg/response"
)

// CtxUserIDKey is the gin context key holding the authenticated user's ID.
const CtxUserIDKey = "userID"

// Auth reads the session cookie, validates it, and injects the user ID into
// the context. A missing cookie is 401; a token that fails signature or
// expiry checks is 403. Tokens are stateless, so no store lookup happens here.
func Auth(jwt *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusForbidden, "forbidden", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
