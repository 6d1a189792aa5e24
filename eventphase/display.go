// File: eventphase/display.go
package eventphase

import "time"

// StatusCode identifies the message a countdown display should show. The
// text itself is localized by the presentation layer.
type StatusCode string

const (
	StatusNoSchedule           StatusCode = "no_schedule"
	StatusStartsIn             StatusCode = "starts_in"
	StatusRegistrationClosesIn StatusCode = "registration_closes_in"
	StatusAwaitingStart        StatusCode = "awaiting_start"
	StatusEndsIn               StatusCode = "ends_in"
	StatusRunning              StatusCode = "running"
	StatusConcluded            StatusCode = "concluded"
)

// DisplayState is the presentation-facing reduction of Settings at an
// instant. A nil countdown means the boundary is unset or already passed.
type DisplayState struct {
	Phase     Phase      `json:"phase"`
	Primary   *Countdown `json:"primaryCountdown"`
	Secondary *Countdown `json:"secondaryCountdown"`
	Status    StatusCode `json:"status"`
	Gates     Gates      `json:"gates"`
}

// Display computes the live countdown view for (s, now).
func Display(s Settings, now time.Time) DisplayState {
	phase := ComputePhase(s, now)
	state := DisplayState{Phase: phase, Gates: GatesFor(phase)}

	if !s.HasSchedule() {
		state.Status = StatusNoSchedule
		return state
	}

	switch phase {
	case Ended:
		state.Status = StatusConcluded

	case Running:
		state.Primary = countdownPtr(RemainingUntil(s.EventEnd, now))
		state.Secondary = countdownPtr(RemainingUntil(s.RegistrationEnd, now))
		if state.Primary != nil {
			state.Status = StatusEndsIn
		} else {
			state.Status = StatusRunning
		}

	default:
		state.Primary = countdownPtr(RemainingUntil(s.EventStart, now))
		state.Secondary = countdownPtr(RemainingUntil(s.RegistrationEnd, now))
		switch {
		case state.Primary != nil:
			state.Status = StatusStartsIn
		case state.Secondary != nil:
			state.Status = StatusRegistrationClosesIn
		default:
			state.Status = StatusAwaitingStart
		}
	}
	return state
}

func countdownPtr(c Countdown, ok bool) *Countdown {
	if !ok {
		return nil
	}
	return &c
}
