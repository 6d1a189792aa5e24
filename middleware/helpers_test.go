// file: middleware/helpers_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter returns a router with a cookie session store and a
// /login-test?user=<id>&admin=<bool> route that populates the session.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions("testsession", cookie.NewStore([]byte("super-secret-key"))))

	router.GET("/login-test", func(c *gin.Context) {
		session := sessions.Default(c)
		if id, err := strconv.ParseInt(c.Query("user"), 10, 64); err == nil {
			session.Set(SessionUser, id)
		}
		session.Set(SessionAdmin, c.Query("admin") == "true")
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "Failed to save session")
			return
		}
		c.String(http.StatusOK, "Session set")
	})
	return router
}

// login runs /login-test and returns the session cookies.
func login(t *testing.T, router *gin.Engine, query string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login-test?"+query, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func get(router *gin.Engine, path string, cookies []*http.Cookie, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}
