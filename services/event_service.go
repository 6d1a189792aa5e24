// File: services/event_service.go
package services

import (
	"context"
	"sync"
	"time"

	"go-ctf-event/cache"
	"go-ctf-event/eventphase"
	"go-ctf-event/logger"
	"go-ctf-event/models"
)

// PhaseSource answers gating questions from the current schedule.
type PhaseSource interface {
	Phase() eventphase.Phase
	RegistrationOpen() bool
}

// EventServiceInterface is what the HTTP and websocket layers use.
type EventServiceInterface interface {
	PhaseSource
	Refresh(ctx context.Context) error
	Snapshot() eventphase.Settings
	Gates() eventphase.Gates
	Display() eventphase.DisplayState
	UpdatedAt() time.Time
	UpdateSettings(ctx context.Context, s eventphase.Settings) (models.EventSettings, error)
}

var _ EventServiceInterface = (*EventService)(nil)

// EventService owns the single read-only schedule snapshot. Every phase
// computation reads the snapshot once and evaluates it against the clock.
type EventService struct {
	repo  SettingsRepository
	cache cache.Store
	now   func() time.Time

	mu        sync.RWMutex
	settings  eventphase.Settings
	updatedAt time.Time
	loaded    bool
}

// NewEventService creates the service. store may be nil.
func NewEventService(repo SettingsRepository, store cache.Store) *EventService {
	return &EventService{repo: repo, cache: store, now: time.Now}
}

// SetClock replaces the time source. Tests use it to pin now.
func (s *EventService) SetClock(now func() time.Time) {
	s.now = now
}

// Refresh reloads the schedule from the database. When the database is
// unreachable and nothing was loaded yet, the cached snapshot is used.
func (s *EventService) Refresh(ctx context.Context) error {
	row, err := s.repo.LoadSettings(ctx)
	if err != nil {
		logger.Warn.Printf("[EventService.Refresh] load settings failed: %v", err)
		s.loadFromCache()
		return err
	}
	s.apply(row)
	return nil
}

func (s *EventService) loadFromCache() {
	if s.cache == nil {
		return
	}
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return
	}

	cached, found, err := s.cache.LoadSettings()
	if err != nil {
		logger.Error.Printf("[EventService.Refresh] cache read failed: %v", err)
		return
	}
	if !found {
		return
	}
	s.mu.Lock()
	s.settings = cached
	s.loaded = true
	s.mu.Unlock()
	logger.Info.Println("[EventService.Refresh] using cached schedule")
}

func (s *EventService) apply(row models.EventSettings) {
	settings := row.Schedule()

	s.mu.Lock()
	changed := !s.loaded || !settings.Equal(s.settings)
	s.settings = settings
	s.updatedAt = row.UpdatedAt
	s.loaded = true
	s.mu.Unlock()

	if changed {
		logger.Info.Printf("[EventService] schedule loaded: registrationEnd=%s start=%s end=%s",
			settings.RegistrationEnd, settings.EventStart, settings.EventEnd)
		if s.cache != nil {
			if err := s.cache.SaveSettings(settings); err != nil {
				logger.Warn.Printf("[EventService] cache write failed: %v", err)
			}
		}
	}
}

// Snapshot returns the current schedule.
func (s *EventService) Snapshot() eventphase.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdatedAt is when the schedule row was last written.
func (s *EventService) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// Phase is the event phase right now.
func (s *EventService) Phase() eventphase.Phase {
	return eventphase.ComputePhase(s.Snapshot(), s.now())
}

// Gates are the action permissions right now.
func (s *EventService) Gates() eventphase.Gates {
	return eventphase.GatesFor(s.Phase())
}

// Display is the countdown view right now.
func (s *EventService) Display() eventphase.DisplayState {
	return eventphase.Display(s.Snapshot(), s.now())
}

// RegistrationOpen reports whether account sign-up is allowed right now.
func (s *EventService) RegistrationOpen() bool {
	return eventphase.RegistrationOpen(s.Snapshot(), s.now())
}

// UpdateSettings stores a new schedule. Out of order boundaries are
// accepted and logged.
func (s *EventService) UpdateSettings(ctx context.Context, settings eventphase.Settings) (models.EventSettings, error) {
	if !settings.Ordered() {
		logger.Warn.Printf("[EventService.UpdateSettings] boundaries are out of order: registrationEnd=%s start=%s end=%s",
			settings.RegistrationEnd, settings.EventStart, settings.EventEnd)
	}
	row, err := s.repo.SaveSettings(ctx, models.SettingsFromSchedule(settings))
	if err != nil {
		logger.Error.Printf("[EventService.UpdateSettings] %v", err)
		return models.EventSettings{}, err
	}
	s.apply(row)
	return row, nil
}
