// File: eventphase/phase.go
package eventphase

import (
	"fmt"
	"time"
)

// Phase is the derived stage of the event. Phases are ordered: a later
// phase is never followed by an earlier one for a fixed Settings value.
type Phase int

const (
	NotStarted Phase = iota
	RegistrationClosed
	Running
	Ended
)

var phaseNames = map[Phase]string{
	NotStarted:         "not_started",
	RegistrationClosed: "registration_closed",
	Running:            "running",
	Ended:              "ended",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// MarshalText lets phases travel as their names in JSON payloads.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a phase name.
func (p *Phase) UnmarshalText(text []byte) error {
	for phase, name := range phaseNames {
		if name == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("eventphase: unknown phase %q", string(text))
}

// Settings is a read-only snapshot of the three event boundaries.
type Settings struct {
	RegistrationEnd Boundary `json:"registrationEndTime"`
	EventStart      Boundary `json:"eventStartTime"`
	EventEnd        Boundary `json:"eventEndTime"`
}

// HasSchedule reports whether at least one boundary is configured.
func (s Settings) HasSchedule() bool {
	return s.RegistrationEnd.IsSet() || s.EventStart.IsSet() || s.EventEnd.IsSet()
}

// Equal reports whether both snapshots describe the same schedule.
func (s Settings) Equal(o Settings) bool {
	return s.RegistrationEnd.Equal(o.RegistrationEnd) &&
		s.EventStart.Equal(o.EventStart) &&
		s.EventEnd.Equal(o.EventEnd)
}

// Ordered reports whether the configured boundaries respect
// registration end <= start <= end. Unset boundaries are skipped.
func (s Settings) Ordered() bool {
	var last time.Time
	seen := false
	for _, b := range []Boundary{s.RegistrationEnd, s.EventStart, s.EventEnd} {
		t, ok := b.Time()
		if !ok {
			continue
		}
		if seen && t.Before(last) {
			return false
		}
		last, seen = t, true
	}
	return true
}

// ComputePhase resolves the phase at now. Ended is checked first so a past
// event end wins regardless of the other two boundaries.
func ComputePhase(s Settings, now time.Time) Phase {
	switch {
	case s.EventEnd.passed(now):
		return Ended
	case s.EventStart.reached(now):
		return Running
	case s.RegistrationEnd.passed(now):
		return RegistrationClosed
	default:
		return NotStarted
	}
}

// CanManageTeam governs team creation, joining and leaving.
func CanManageTeam(p Phase) bool {
	return p == NotStarted
}

// CanSubmitFlag governs flag submission.
func CanSubmitFlag(p Phase) bool {
	return p == Running
}

// Gates is the pair of permissions derived from a phase.
type Gates struct {
	CanManageTeam bool `json:"canManageTeam"`
	CanSubmitFlag bool `json:"canSubmitFlag"`
}

// GatesFor returns both gates for p.
func GatesFor(p Phase) Gates {
	return Gates{
		CanManageTeam: CanManageTeam(p),
		CanSubmitFlag: CanSubmitFlag(p),
	}
}

// RegistrationOpen reports whether account sign-up is accepted. Unlike team
// management, sign-up requires an explicit deadline that has not passed.
func RegistrationOpen(s Settings, now time.Time) bool {
	end, ok := s.RegistrationEnd.Time()
	return ok && !now.After(end)
}
