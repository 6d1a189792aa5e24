// file: websocket/countdown_test.go
package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ctf-event/eventphase"
	"go-ctf-event/models"
)

type fakeSource struct {
	mu sync.Mutex
	d  eventphase.DisplayState
}

func (f *fakeSource) Display() eventphase.DisplayState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.d
}

func (f *fakeSource) set(p eventphase.Phase, status eventphase.StatusCode) {
	f.mu.Lock()
	f.d = eventphase.DisplayState{Phase: p, Status: status, Gates: eventphase.GatesFor(p)}
	f.mu.Unlock()
}

func newTestBroadcaster(src StateSource, m Messenger) *CountdownBroadcaster {
	b := NewCountdownBroadcaster(src, m, keyTranslator{}, "es", 10*time.Millisecond)
	b.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return b
}

func TestCountdownBroadcaster_TickBroadcastsState(t *testing.T) {
	src := &fakeSource{}
	src.set(eventphase.NotStarted, eventphase.StatusStartsIn)
	m := &recordingMessenger{}

	newTestBroadcaster(src, m).Tick()

	require.Equal(t, []string{"eventState"}, m.actions())
	p := m.msgs[0].payload
	assert.Equal(t, eventphase.NotStarted, p["phase"])
	assert.Equal(t, "status.starts_in", p["message"])
	assert.Equal(t, "phase.not_started", p["phaseLabel"])
	assert.Equal(t, "2025-03-01T12:00:00Z", p["serverTime"])
}

func TestCountdownBroadcaster_PhaseChanged(t *testing.T) {
	src := &fakeSource{}
	src.set(eventphase.NotStarted, eventphase.StatusStartsIn)
	m := &recordingMessenger{}
	b := newTestBroadcaster(src, m)

	b.Tick()
	b.Tick()
	src.set(eventphase.Running, eventphase.StatusEndsIn)
	b.Tick()

	assert.Equal(t, []string{"eventState", "eventState", "phaseChanged", "eventState"}, m.actions())
	changed := m.msgs[2].payload
	assert.Equal(t, eventphase.NotStarted, changed["from"])
	assert.Equal(t, eventphase.Running, changed["to"])
	assert.Equal(t, eventphase.Gates{CanManageTeam: false, CanSubmitFlag: true}, changed["gates"])
}

func TestCountdownBroadcaster_StateJSON(t *testing.T) {
	src := &fakeSource{}
	src.set(eventphase.Ended, eventphase.StatusConcluded)
	b := newTestBroadcaster(src, &recordingMessenger{})

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b.StateJSON(), &got))
	assert.Equal(t, "eventState", got["action"])
	assert.Equal(t, "ended", got["phase"])
	assert.Equal(t, "concluded", got["status"])
	assert.Nil(t, got["primaryCountdown"])
}

func TestCountdownBroadcaster_RunStopsOnCancel(t *testing.T) {
	src := &fakeSource{}
	src.set(eventphase.Running, eventphase.StatusRunning)
	m := &recordingMessenger{}
	b := newTestBroadcaster(src, m)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(m.actions()) >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestCountdownBroadcaster_NotifySolve(t *testing.T) {
	m := &recordingMessenger{}
	b := newTestBroadcaster(&fakeSource{}, m)

	b.NotifySolve(models.SolveEvent{
		TeamID: 3, TeamName: "null byte", ChallengeID: 9, ChallengeTitle: "Cookie Monster",
		Points: 150, SolvedAt: time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC),
	})

	require.Equal(t, []string{"solve"}, m.actions())
	p := m.msgs[0].payload
	assert.Equal(t, "null byte", p["teamName"])
	assert.Equal(t, 150, p["points"])
	assert.Equal(t, "2025-03-01T13:00:00Z", p["solvedAt"])
}

func TestNewCountdownBroadcaster_DefaultInterval(t *testing.T) {
	b := NewCountdownBroadcaster(&fakeSource{}, &recordingMessenger{}, nil, "", 0)
	assert.Equal(t, time.Second, b.Interval)

	payload := b.StatePayload(eventphase.DisplayState{})
	_, hasMessage := payload["message"]
	assert.False(t, hasMessage, "no translator, no message")
}
