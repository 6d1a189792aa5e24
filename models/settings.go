// File: models/settings.go
package models

import (
	"time"

	"go-ctf-event/eventphase"
)

// EventSettings is the singleton schedule row. Nil means the boundary is
// not configured.
type EventSettings struct {
	RegistrationEnd *time.Time `json:"registrationEndTime"`
	EventStart      *time.Time `json:"eventStartTime"`
	EventEnd        *time.Time `json:"eventEndTime"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Schedule converts the row into the phase engine's settings.
func (s EventSettings) Schedule() eventphase.Settings {
	return eventphase.Settings{
		RegistrationEnd: eventphase.FromPtr(s.RegistrationEnd),
		EventStart:      eventphase.FromPtr(s.EventStart),
		EventEnd:        eventphase.FromPtr(s.EventEnd),
	}
}

// SettingsFromSchedule is the inverse of Schedule.
func SettingsFromSchedule(s eventphase.Settings) EventSettings {
	return EventSettings{
		RegistrationEnd: s.RegistrationEnd.Ptr(),
		EventStart:      s.EventStart.Ptr(),
		EventEnd:        s.EventEnd.Ptr(),
	}
}
