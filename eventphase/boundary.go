// Package eventphase derives the lifecycle phase of the event, its countdowns
// and the team/submission gates from the three configured boundaries.
// File: eventphase/boundary.go
package eventphase

import (
	"bytes"
	"encoding/json"
	"time"
)

// Boundary is an optional instant. The zero value is unset, meaning the
// boundary never applies.
type Boundary struct {
	at  time.Time
	set bool
}

// At returns a boundary set to t.
func At(t time.Time) Boundary {
	return Boundary{at: t, set: true}
}

// Unset returns a boundary that never applies.
func Unset() Boundary {
	return Boundary{}
}

// FromPtr maps a nil pointer to an unset boundary.
func FromPtr(t *time.Time) Boundary {
	if t == nil {
		return Unset()
	}
	return At(*t)
}

// Time returns the instant and whether the boundary is set.
func (b Boundary) Time() (time.Time, bool) {
	return b.at, b.set
}

// IsSet reports whether the boundary applies.
func (b Boundary) IsSet() bool {
	return b.set
}

// Ptr returns nil for an unset boundary.
func (b Boundary) Ptr() *time.Time {
	if !b.set {
		return nil
	}
	t := b.at
	return &t
}

// Equal compares instants, ignoring location.
func (b Boundary) Equal(o Boundary) bool {
	return b.set == o.set && (!b.set || b.at.Equal(o.at))
}

// passed reports whether now is strictly after the boundary.
func (b Boundary) passed(now time.Time) bool {
	return b.set && now.After(b.at)
}

// reached reports whether now is at or after the boundary.
func (b Boundary) reached(now time.Time) bool {
	return b.set && !now.Before(b.at)
}

// MarshalJSON encodes an unset boundary as null and a set one as RFC 3339.
func (b Boundary) MarshalJSON() ([]byte, error) {
	if !b.set {
		return []byte("null"), nil
	}
	return json.Marshal(b.at.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts null or an RFC 3339 string.
func (b *Boundary) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*b = Unset()
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*b = At(t)
	return nil
}

func (b Boundary) String() string {
	if !b.set {
		return "unset"
	}
	return b.at.UTC().Format(time.RFC3339)
}
