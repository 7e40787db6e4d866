package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rizkypratama/havenly/internal/authz"
	"github.com/rizkypratama/havenly/pkg/response"
)

// RequireSelf enforces that the authenticated caller is the user addressed
// by the :id path parameter. Must run after Auth.
func RequireSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.GetString(CtxUserIDKey)
		if !authz.OwnsResource(caller, c.Param("id")) {
			response.AbortError(c, http.StatusUnauthorized, "you can only manage your own account", nil)
			return
		}
		c.Next()
	}
}
