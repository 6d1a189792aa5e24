// main_test.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-ctf-event/cache"
	"go-ctf-event/config"
	"go-ctf-event/controllers"
	"go-ctf-event/eventphase"
	"go-ctf-event/i18n"
	"go-ctf-event/models"
	"go-ctf-event/services"
	"go-ctf-event/websocket"
)

func testConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.FromLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.NoError(t, err)
	return cfg
}

func testRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *services.MockAccountService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	accounts := new(services.MockAccountService)
	t.Cleanup(func() { accounts.AssertExpectations(t) })
	router := newRouter(cfg, controllers.Deps{
		Events:       new(services.MockEventService),
		Teams:        new(services.MockTeamService),
		Challenges:   new(services.MockChallengeService),
		Submissions:  new(services.MockSubmissionService),
		Scoreboard:   new(services.MockScoreboardService),
		Accounts:     accounts,
		Certificates: new(services.MockCertificateService),
		Translator:   i18n.NewTranslator(cfg.DefaultLocale),
	})
	return router, accounts
}

// TestHealthEndpoint checks /health and the security headers.
func TestHealthEndpoint(t *testing.T) {
	router, _ := testRouter(t, testConfig(t, nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
	assert.Equal(t, "DENY", resp.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header().Get("X-Content-Type-Options"))
}

// TestProtectedRouteRequiresSession: participant routes reject anonymous callers.
func TestProtectedRouteRequiresSession(t *testing.T) {
	router, _ := testRouter(t, testConfig(t, nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

// TestLoginSessionRoundTrip logs in and reuses the cookie on /api/me.
func TestLoginSessionRoundTrip(t *testing.T) {
	cfg := testConfig(t, map[string]string{"SECURE_COOKIES": "true"})
	router, accounts := testRouter(t, cfg)
	profile := models.Profile{ID: 42, Email: "ana@espe.edu.ec", FullName: "Ana Pérez"}
	accounts.On("Authenticate", mock.Anything, "ana@espe.edu.ec", "s3cret-pass").Return(profile, nil)
	accounts.On("Profile", mock.Anything, int64(42)).Return(profile, nil)

	login := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"ana@espe.edu.ec","password":"s3cret-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(login, req)
	require.Equal(t, http.StatusOK, login.Code, login.Body.String())

	var session *http.Cookie
	for _, c := range login.Result().Cookies() {
		if c.Name == sessionName {
			session = c
		}
	}
	require.NotNil(t, session, "session cookie missing")
	assert.True(t, session.HttpOnly)
	assert.True(t, session.Secure)

	me := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(session)
	router.ServeHTTP(me, req)
	assert.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), `"id":42`)
}

func TestMetricsPublisher_Disabled(t *testing.T) {
	cfg := testConfig(t, nil)
	assert.IsType(t, websocket.NoopPublisher{}, metricsPublisher(cfg))
}

// TestSetup_DatabaseDownServesCachedSchedule starts against a closed port
// with a schedule already in the local cache.
func TestSetup_DatabaseDownServesCachedSchedule(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "cache.db")
	seed, err := cache.NewBoltStore(cachePath)
	require.NoError(t, err)
	require.NoError(t, seed.SaveSettings(eventphase.Settings{
		EventStart: eventphase.At(time.Now().Add(time.Hour)),
	}))
	require.NoError(t, seed.Close())

	cfg := testConfig(t, map[string]string{
		"DATABASE_URL":  "postgres://127.0.0.1:1/ctf?sslmode=disable&connect_timeout=2",
		"CACHE_DB_PATH": cachePath,
	})
	gin.SetMode(gin.TestMode)

	s, err := setup(context.Background(), cfg)
	require.NoError(t, err, "an unreachable database must not stop startup")
	t.Cleanup(s.Close)

	resp := httptest.NewRecorder()
	s.handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/event", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var event struct {
		Phase  string `json:"phase"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &event))
	assert.Equal(t, eventphase.NotStarted.String(), event.Phase)
	assert.Equal(t, string(eventphase.StatusStartsIn), event.Status)

	health := httptest.NewRecorder()
	s.handler.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, health.Code)
}
