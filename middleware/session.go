// Package middleware provides request filters and security checks for the application.
// File: middleware/session.go
package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-ctf-event/i18n"
)

// Session keys.
const (
	SessionUser  = "user"
	SessionAdmin = "isAdmin"
)

// ContextUserID is the gin context key AuthRequired stores the user ID in.
const ContextUserID = "userID"

// UserID returns the logged-in user's ID from the context (set by
// AuthRequired) or, failing that, from the session.
func UserID(c *gin.Context) (int64, bool) {
	if v, ok := c.Get(ContextUserID); ok {
		id, ok := v.(int64)
		return id, ok
	}
	id, ok := sessions.Default(c).Get(SessionUser).(int64)
	return id, ok && id > 0
}

// IsAdmin reports the session's admin flag.
func IsAdmin(c *gin.Context) bool {
	isAdmin, _ := sessions.Default(c).Get(SessionAdmin).(bool)
	return isAdmin
}

// abortWith writes {"error": <localized key>} plus extra fields and stops
// the chain.
func abortWith(c *gin.Context, status int, tr i18n.T, key, fallback string, extra gin.H) {
	msg := fallback
	if tr != nil {
		msg = tr.T(c.GetHeader("Accept-Language"), key, nil)
	}
	body := gin.H{"error": msg}
	for k, v := range extra {
		body[k] = v
	}
	c.AbortWithStatusJSON(status, body)
}
