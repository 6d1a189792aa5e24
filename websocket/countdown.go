// file: websocket/countdown.go
package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go-ctf-event/eventphase"
	"go-ctf-event/i18n"
	"go-ctf-event/logger"
	"go-ctf-event/models"
)

// StateSource supplies the display state for the current instant.
type StateSource interface {
	Display() eventphase.DisplayState
}

// CountdownBroadcaster pushes the event countdown to every client once per
// interval and announces phase transitions and solves.
type CountdownBroadcaster struct {
	Source     StateSource
	Messenger  Messenger
	Translator i18n.T
	Locale     string
	Interval   time.Duration

	now       func() time.Time
	mu        sync.Mutex
	lastPhase eventphase.Phase
	seen      bool
}

// NewCountdownBroadcaster wires a broadcaster. A non-positive interval
// defaults to one second.
func NewCountdownBroadcaster(source StateSource, messenger Messenger, tr i18n.T, locale string, interval time.Duration) *CountdownBroadcaster {
	if interval <= 0 {
		interval = time.Second
	}
	return &CountdownBroadcaster{
		Source:     source,
		Messenger:  messenger,
		Translator: tr,
		Locale:     locale,
		Interval:   interval,
		now:        time.Now,
	}
}

// StatePayload is the body of an "eventState" message.
func (b *CountdownBroadcaster) StatePayload(d eventphase.DisplayState) map[string]interface{} {
	payload := map[string]interface{}{
		"phase":              d.Phase,
		"status":             d.Status,
		"primaryCountdown":   d.Primary,
		"secondaryCountdown": d.Secondary,
		"gates":              d.Gates,
		"serverTime":         b.now().UTC().Format(time.RFC3339),
	}
	if b.Translator != nil {
		payload["message"] = i18n.StatusMessage(b.Translator, b.Locale, d)
		payload["phaseLabel"] = i18n.PhaseLabel(b.Translator, b.Locale, d.Phase)
	}
	return payload
}

// StateJSON renders the current "eventState" message. The hub sends it to
// new connections.
func (b *CountdownBroadcaster) StateJSON() []byte {
	payload := b.StatePayload(b.Source.Display())
	payload["action"] = "eventState"
	out, err := json.Marshal(payload)
	if err != nil {
		logger.Error.Printf("[CountdownBroadcaster.StateJSON] %v", err)
		return nil
	}
	return out
}

// Tick broadcasts the state once, preceded by "phaseChanged" when the phase
// differs from the previous tick.
func (b *CountdownBroadcaster) Tick() {
	d := b.Source.Display()

	b.mu.Lock()
	changed := b.seen && d.Phase != b.lastPhase
	from := b.lastPhase
	b.lastPhase, b.seen = d.Phase, true
	b.mu.Unlock()

	if changed {
		logger.Info.Printf("[CountdownBroadcaster.Tick] phase %s -> %s", from, d.Phase)
		b.Messenger.BroadcastMessage("phaseChanged", map[string]interface{}{
			"from":  from,
			"to":    d.Phase,
			"gates": d.Gates,
		})
	}
	b.Messenger.BroadcastMessage("eventState", b.StatePayload(d))
}

// Run ticks until ctx is cancelled.
func (b *CountdownBroadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()

	b.Tick()
	for {
		select {
		case <-ticker.C:
			b.Tick()
		case <-ctx.Done():
			logger.Debug.Println("[CountdownBroadcaster.Run] stopped")
			return
		}
	}
}

// NotifySolve announces a correct submission to every client.
func (b *CountdownBroadcaster) NotifySolve(ev models.SolveEvent) {
	b.Messenger.BroadcastMessage("solve", map[string]interface{}{
		"teamId":         ev.TeamID,
		"teamName":       ev.TeamName,
		"challengeId":    ev.ChallengeID,
		"challengeTitle": ev.ChallengeTitle,
		"points":         ev.Points,
		"solvedAt":       ev.SolvedAt.UTC().Format(time.RFC3339),
	})
}
