// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ctf-event/i18n"
	"go-ctf-event/logger"
)

// AuthRequired ensures the user is logged in and stores the user ID in the
// gin context. Anonymous requests get 401.
func AuthRequired(tr i18n.T) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			logger.Debug.Printf("[AuthRequired] anonymous request to %s", c.Request.URL.Path)
			abortWith(c, http.StatusUnauthorized, tr, "error.unauthorized", "authentication required", nil)
			return
		}
		c.Set(ContextUserID, id)
		c.Next()
	}
}
