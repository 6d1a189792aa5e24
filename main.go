// main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"go-ctf-event/cache"
	"go-ctf-event/config"
	"go-ctf-event/controllers"
	"go-ctf-event/database"
	"go-ctf-event/i18n"
	"go-ctf-event/logger"
	"go-ctf-event/scheduler"
	"go-ctf-event/services"
	"go-ctf-event/validation"
	"go-ctf-event/websocket"
)

const (
	sessionName        = "ctfsession"
	sessionMaxAge      = 86400 * 7 // 7 days
	shutdownTimeout    = 10 * time.Second
	startupPingTimeout = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error.Fatalf("[main] %v", err)
	}
	if err := logger.InitLogger(cfg.LogDir); err != nil {
		logger.Warn.Printf("[main] file logging disabled: %v", err)
	}
	logger.SetLogLevel(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()
	if err != nil {
		logger.Error.Fatalf("[main] %v", err)
	}
}

// newRouter builds the gin engine: sessions, headers and every route.
func newRouter(cfg *config.Config, deps controllers.Deps) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Next()
	})

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionName, store))

	controllers.RegisterRoutes(router, deps)
	return router
}

// server is the wired application before it starts listening.
type server struct {
	handler   http.Handler
	hub       *websocket.Hub
	countdown *websocket.CountdownBroadcaster
	jobs      *scheduler.Scheduler
	closers   []func()
}

// Close releases the database pool and the cache, newest first.
func (s *server) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// setup wires every dependency. The cache opens first and the database
// is optional at startup: an unreachable server leaves the app degraded,
// serving the cached schedule until the pool reconnects.
func setup(ctx context.Context, cfg *config.Config) (*server, error) {
	if err := validation.RegisterBindings(cfg.EmailDomain); err != nil {
		return nil, err
	}
	s := &server{}

	boltStore, err := cache.NewBoltStore(cfg.CacheDBPath)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, func() {
		if err := boltStore.Close(); err != nil {
			logger.Warn.Printf("[main] closing cache: %v", err)
		}
	})

	pool, err := database.OpenPool(ctx, cfg.DatabaseURL)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.closers = append(s.closers, pool.Close)
	db := database.NewStore(pool)

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	pingErr := db.Ping(pingCtx)
	cancel()
	switch {
	case pingErr != nil:
		logger.Warn.Printf("[main] database unreachable, starting degraded: %v", pingErr)
	case cfg.RunMigrations:
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			logger.Warn.Printf("[main] migrations failed, starting degraded: %v", err)
		}
	}

	tr := i18n.NewTranslator(cfg.DefaultLocale)

	events := services.NewEventService(db, boltStore)
	if err := events.Refresh(ctx); err != nil {
		logger.Warn.Printf("[main] initial settings load failed, using cached schedule: %v", err)
	}

	s.hub = websocket.NewHub(cfg.AllowedOrigins)
	s.countdown = websocket.NewCountdownBroadcaster(events, s.hub, tr, cfg.DefaultLocale, cfg.CountdownInterval)
	s.hub.SetGreeting(s.countdown.StateJSON)

	deps := controllers.Deps{
		Events:       events,
		Teams:        services.NewTeamService(db, db, db, events, cfg.MaxTeamSize),
		Challenges:   services.NewChallengeService(db, db, db),
		Submissions:  services.NewSubmissionService(db, db, db, events, s.countdown),
		Scoreboard:   services.NewScoreboardService(db, boltStore),
		Accounts:     services.NewAccountService(db, events, cfg.EmailDomain),
		Certificates: services.NewCertificateService(db, cfg.CertificateBaseURL),
		Translator:   tr,
		Database:     db,
		WebSocket:    s.hub.ServeWs,
	}

	s.jobs, err = scheduler.New(scheduler.Config{RefreshSpec: cfg.SettingsRefreshSpec}, events)
	if err != nil {
		s.Close()
		return nil, err
	}
	if err := s.jobs.AddMetrics(metricsPublisher(cfg), s.hub, db); err != nil {
		s.Close()
		return nil, err
	}

	s.handler = newRouter(cfg, deps)
	if cfg.TracingEnabled {
		s.handler = xray.Handler(xray.NewFixedSegmentNamer("ctf-event"), s.handler)
	}
	return s, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	s, err := setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.hub.Run(ctx)
	go s.countdown.Run(ctx)
	s.jobs.Start()
	defer s.jobs.Stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info.Printf("[main] listening on %s (%s)", cfg.HTTPAddr, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info.Printf("[main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// metricsPublisher returns CloudWatch when enabled, a no-op otherwise.
func metricsPublisher(cfg *config.Config) websocket.MetricsPublisher {
	if !cfg.MetricsEnabled {
		return websocket.NoopPublisher{}
	}
	pub, err := websocket.NewDefaultCloudWatchPublisher()
	if err != nil {
		logger.Warn.Printf("[main] CloudWatch unavailable, metrics disabled: %v", err)
		return websocket.NoopPublisher{}
	}
	return pub
}
