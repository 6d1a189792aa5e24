// File: eventphase/snapshot.go
package eventphase

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Snapshot is the wire shape of the settings row: nullable ISO-8601 strings.
type Snapshot struct {
	RegistrationEndTime *string `json:"registrationEndTime"`
	EventStartTime      *string `json:"eventStartTime"`
	EventEndTime        *string `json:"eventEndTime"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
}

// ParseTimestamp accepts RFC 3339 and the offset forms PostgreSQL emits.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("eventphase: invalid timestamp %q", raw)
}

// ParseSnapshot converts the wire shape into Settings. Empty or malformed
// fields become unset boundaries; malformed ones are also reported in the
// returned error so the caller can log them. The Settings value is always
// usable.
func ParseSnapshot(snap Snapshot) (Settings, error) {
	var errs []error
	parse := func(name string, raw *string) Boundary {
		if raw == nil || strings.TrimSpace(*raw) == "" {
			return Unset()
		}
		t, err := ParseTimestamp(*raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return Unset()
		}
		return At(t)
	}

	s := Settings{
		RegistrationEnd: parse("registrationEndTime", snap.RegistrationEndTime),
		EventStart:      parse("eventStartTime", snap.EventStartTime),
		EventEnd:        parse("eventEndTime", snap.EventEndTime),
	}
	return s, errors.Join(errs...)
}

// ToSnapshot is the inverse of ParseSnapshot for set boundaries.
func (s Settings) ToSnapshot() Snapshot {
	format := func(b Boundary) *string {
		t, ok := b.Time()
		if !ok {
			return nil
		}
		v := t.UTC().Format(time.RFC3339Nano)
		return &v
	}
	return Snapshot{
		RegistrationEndTime: format(s.RegistrationEnd),
		EventStartTime:      format(s.EventStart),
		EventEndTime:        format(s.EventEnd),
	}
}
