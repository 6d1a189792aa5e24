// Package scheduler runs the periodic background jobs.
// File: scheduler/scheduler.go
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"go-ctf-event/logger"
	"go-ctf-event/websocket"
)

const (
	DefaultRefreshSpec = "@every 30s"
	DefaultMetricsSpec = "@every 1m"
	jobTimeout         = 10 * time.Second
)

// Refresher reloads the event schedule.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ConnectionCounter reports open WebSocket connections.
type ConnectionCounter interface {
	Count() int
}

// SubmissionCounter reports submission totals.
type SubmissionCounter interface {
	CountSubmissions(ctx context.Context) (total, correct int64, err error)
}

type Config struct {
	RefreshSpec string // settings refresh, e.g. "@every 30s"
	MetricsSpec string // metrics publication, e.g. "@every 1m"
}

type Scheduler struct {
	c      *cron.Cron
	config Config
}

// New creates a scheduler with the settings refresh job registered.
func New(cfg Config, refresher Refresher) (*Scheduler, error) {
	cfg.RefreshSpec = firstNonEmpty(cfg.RefreshSpec, DefaultRefreshSpec)
	cfg.MetricsSpec = firstNonEmpty(cfg.MetricsSpec, DefaultMetricsSpec)

	cronLogger := cron.PrintfLogger(warnPrintf{})
	s := &Scheduler{
		c: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		config: cfg,
	}
	if _, err := s.c.AddFunc(cfg.RefreshSpec, RefreshJob(refresher)); err != nil {
		return nil, err
	}
	return s, nil
}

// AddMetrics registers the metrics publication job.
func (s *Scheduler) AddMetrics(pub websocket.MetricsPublisher, conns ConnectionCounter, subs SubmissionCounter) error {
	_, err := s.c.AddFunc(s.config.MetricsSpec, MetricsJob(pub, conns, subs))
	return err
}

func (s *Scheduler) Start() {
	logger.Info.Printf("[Scheduler] starting (refresh=%s, metrics=%s, jobs=%d)",
		s.config.RefreshSpec, s.config.MetricsSpec, s.Jobs())
	s.c.Start()
}

// Stop halts the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.c.Stop().Done()
}

// Jobs is the number of registered jobs.
func (s *Scheduler) Jobs() int {
	return len(s.c.Entries())
}

// GetConfig returns the effective configuration.
func (s *Scheduler) GetConfig() Config {
	return s.config
}

// RefreshJob reloads the schedule. Failures are logged; the previous
// snapshot stays in effect.
func RefreshJob(r Refresher) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := r.Refresh(ctx); err != nil {
			logger.Warn.Printf("[Scheduler.refresh] %v", err)
		}
	}
}

// MetricsJob publishes connection and submission gauges.
func MetricsJob(pub websocket.MetricsPublisher, conns ConnectionCounter, subs SubmissionCounter) func() {
	return func() {
		if conns != nil {
			pub.PublishConnections(conns.Count())
		}
		if subs == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		total, correct, err := subs.CountSubmissions(ctx)
		if err != nil {
			logger.Warn.Printf("[Scheduler.metrics] count submissions: %v", err)
			return
		}
		pub.PublishSubmissions(total, correct)
	}
}

// warnPrintf resolves logger.Warn per call so InitLogger's file output is
// picked up.
type warnPrintf struct{}

func (warnPrintf) Printf(format string, v ...interface{}) {
	logger.Warn.Printf(format, v...)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
