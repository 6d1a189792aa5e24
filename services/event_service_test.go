// file: services/event_service_test.go
package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-ctf-event/cache"
	"go-ctf-event/eventphase"
	"go-ctf-event/models"
)

var testNow = time.Date(2025, 11, 9, 19, 30, 0, 0, time.UTC)

func tp(d time.Duration) *time.Time {
	t := testNow.Add(d)
	return &t
}

func newEventService(t *testing.T, repo SettingsRepository, store cache.Store) *EventService {
	t.Helper()
	svc := NewEventService(repo, store)
	svc.SetClock(func() time.Time { return testNow })
	return svc
}

func newBoltCache(t *testing.T) *cache.BoltStore {
	t.Helper()
	store, err := cache.NewBoltStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEventService_NoScheduleBeforeRefresh(t *testing.T) {
	svc := newEventService(t, new(mockSettingsRepo), nil)

	assert.Equal(t, eventphase.NotStarted, svc.Phase())
	assert.True(t, svc.Gates().CanManageTeam)
	assert.False(t, svc.Gates().CanSubmitFlag)
	assert.False(t, svc.RegistrationOpen())
	assert.Equal(t, eventphase.StatusNoSchedule, svc.Display().Status)
}

func TestEventService_RefreshRunning(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("LoadSettings", mock.Anything).Return(models.EventSettings{
		RegistrationEnd: tp(-2 * time.Hour),
		EventStart:      tp(-time.Hour),
		EventEnd:        tp(time.Hour),
		UpdatedAt:       testNow.Add(-24 * time.Hour),
	}, nil)

	svc := newEventService(t, repo, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	assert.Equal(t, eventphase.Running, svc.Phase())
	assert.Equal(t, eventphase.Gates{CanManageTeam: false, CanSubmitFlag: true}, svc.Gates())
	d := svc.Display()
	assert.Equal(t, eventphase.StatusEndsIn, d.Status)
	require.NotNil(t, d.Primary)
	assert.Equal(t, uint(1), d.Primary.Hours)
	assert.Equal(t, testNow.Add(-24*time.Hour), svc.UpdatedAt())
	repo.AssertExpectations(t)
}

// Test: a database outage at startup falls back to the cached schedule
func TestEventService_RefreshFallsBackToCache(t *testing.T) {
	store := newBoltCache(t)
	require.NoError(t, store.SaveSettings(eventphase.Settings{EventEnd: eventphase.At(testNow.Add(-time.Minute))}))

	repo := new(mockSettingsRepo)
	repo.On("LoadSettings", mock.Anything).Return(models.EventSettings{}, errors.New("connection refused"))

	svc := newEventService(t, repo, store)
	assert.Error(t, svc.Refresh(context.Background()))
	assert.Equal(t, eventphase.Ended, svc.Phase())
}

// Test: once loaded, a failed refresh keeps the in-memory snapshot
func TestEventService_RefreshFailureKeepsSnapshot(t *testing.T) {
	store := newBoltCache(t)
	repo := new(mockSettingsRepo)
	repo.On("LoadSettings", mock.Anything).Return(models.EventSettings{EventStart: tp(-time.Minute)}, nil).Once()
	repo.On("LoadSettings", mock.Anything).Return(models.EventSettings{}, errors.New("timeout")).Once()

	svc := newEventService(t, repo, store)
	require.NoError(t, svc.Refresh(context.Background()))
	assert.Error(t, svc.Refresh(context.Background()))
	assert.Equal(t, eventphase.Running, svc.Phase())

	cached, found, err := store.LoadSettings()
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, cached.EventStart.IsSet())
}

func TestEventService_UpdateSettings(t *testing.T) {
	in := eventphase.Settings{
		RegistrationEnd: eventphase.At(testNow.Add(time.Hour)),
		EventStart:      eventphase.At(testNow.Add(2 * time.Hour)),
	}
	repo := new(mockSettingsRepo)
	repo.On("SaveSettings", mock.Anything, mock.MatchedBy(func(s models.EventSettings) bool {
		return s.RegistrationEnd != nil && s.EventStart != nil && s.EventEnd == nil
	})).Return(models.EventSettings{
		RegistrationEnd: tp(time.Hour),
		EventStart:      tp(2 * time.Hour),
		UpdatedAt:       testNow,
	}, nil)

	svc := newEventService(t, repo, nil)
	row, err := svc.UpdateSettings(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, row.EventEnd)

	assert.True(t, svc.RegistrationOpen())
	assert.Equal(t, eventphase.NotStarted, svc.Phase())
	assert.True(t, svc.Snapshot().Equal(in))
	repo.AssertExpectations(t)
}

// Test: out of order boundaries are stored anyway
func TestEventService_UpdateSettingsUnordered(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("SaveSettings", mock.Anything, mock.Anything).Return(models.EventSettings{
		EventStart: tp(time.Hour),
		EventEnd:   tp(-time.Hour),
	}, nil)

	svc := newEventService(t, repo, nil)
	_, err := svc.UpdateSettings(context.Background(), eventphase.Settings{
		EventStart: eventphase.At(testNow.Add(time.Hour)),
		EventEnd:   eventphase.At(testNow.Add(-time.Hour)),
	})
	require.NoError(t, err)
	assert.Equal(t, eventphase.Ended, svc.Phase())
}

func TestEventService_UpdateSettingsError(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("SaveSettings", mock.Anything, mock.Anything).Return(models.EventSettings{}, errors.New("db down"))

	svc := newEventService(t, repo, nil)
	_, err := svc.UpdateSettings(context.Background(), eventphase.Settings{EventStart: eventphase.At(testNow)})
	assert.Error(t, err)
	assert.False(t, svc.Snapshot().HasSchedule())
}
