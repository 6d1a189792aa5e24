// file: controllers/test_helpers_test.go
package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-ctf-event/middleware"
	"go-ctf-event/services"
	"go-ctf-event/validation"
)

type testDeps struct {
	events       *services.MockEventService
	teams        *services.MockTeamService
	challenges   *services.MockChallengeService
	submissions  *services.MockSubmissionService
	scoreboard   *services.MockScoreboardService
	accounts     *services.MockAccountService
	certificates *services.MockCertificateService
}

// setupTestRouter creates a gin engine with cookie sessions, every route
// registered against mock services, and a /set-session helper route.
func setupTestRouter(t *testing.T) (*gin.Engine, *testDeps) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterBindings(""))
	router := gin.New()
	router.Use(sessions.Sessions("testsession", cookie.NewStore([]byte("test-secret"))))

	d := &testDeps{
		events:       new(services.MockEventService),
		teams:        new(services.MockTeamService),
		challenges:   new(services.MockChallengeService),
		submissions:  new(services.MockSubmissionService),
		scoreboard:   new(services.MockScoreboardService),
		accounts:     new(services.MockAccountService),
		certificates: new(services.MockCertificateService),
	}
	RegisterRoutes(router, Deps{
		Events:       d.events,
		Teams:        d.teams,
		Challenges:   d.challenges,
		Submissions:  d.submissions,
		Scoreboard:   d.scoreboard,
		Accounts:     d.accounts,
		Certificates: d.certificates,
	})

	router.GET("/set-session", func(c *gin.Context) {
		session := sessions.Default(c)
		var body struct {
			User  int64 `form:"user"`
			Admin bool  `form:"admin"`
		}
		_ = c.ShouldBindQuery(&body)
		session.Set(middleware.SessionUser, body.User)
		session.Set(middleware.SessionAdmin, body.Admin)
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	t.Cleanup(func() {
		d.events.AssertExpectations(t)
		d.teams.AssertExpectations(t)
		d.challenges.AssertExpectations(t)
		d.submissions.AssertExpectations(t)
		d.scoreboard.AssertExpectations(t)
		d.accounts.AssertExpectations(t)
		d.certificates.AssertExpectations(t)
	})
	return router, d
}

// sessionCookie logs userID in (as admin when admin is true) and returns
// the session cookie.
func sessionCookie(t *testing.T, router *gin.Engine, userID int64, admin bool) *http.Cookie {
	t.Helper()
	url := "/set-session?user=" + jsonString(userID)
	if admin {
		url += "&admin=true"
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == "testsession" {
			return c
		}
	}
	t.Fatal("session cookie not found")
	return nil
}

// doJSON performs a request with an optional JSON body and cookie.
func doJSON(router *gin.Engine, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func jsonString(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}
