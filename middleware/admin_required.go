// file: middleware/admin_required.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ctf-event/i18n"
	"go-ctf-event/logger"
)

// AdminRequired is a middleware that checks if the user is an admin.
// Anonymous requests get 401, logged-in participants 403.
func AdminRequired(tr i18n.T) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			abortWith(c, http.StatusUnauthorized, tr, "error.unauthorized", "authentication required", nil)
			return
		}
		if !IsAdmin(c) {
			logger.Warn.Printf("[AdminRequired] user %d blocked from %s", id, c.Request.URL.Path)
			abortWith(c, http.StatusForbidden, tr, "error.forbidden", "admin privileges required", nil)
			return
		}
		c.Set(ContextUserID, id)
		c.Next()
	}
}
