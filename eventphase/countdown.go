// File: eventphase/countdown.go
package eventphase

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Countdown is the calendar breakdown of a positive remaining duration.
type Countdown struct {
	Days    uint `json:"days"`
	Hours   uint `json:"hours"`
	Minutes uint `json:"minutes"`
	Seconds uint `json:"seconds"`
}

// Remaining returns the countdown to target, or false when target <= now.
// Each unit is taken from the total millisecond delta with a modulo, so
// hours stay within 0-23 and minutes/seconds within 0-59.
func Remaining(target, now time.Time) (Countdown, bool) {
	if !target.After(now) {
		return Countdown{}, false
	}
	ms := deltaMillis(target, now)
	return Countdown{
		Days:    uint(ms / msPerDay),
		Hours:   uint((ms / msPerHour) % 24),
		Minutes: uint((ms / msPerMinute) % 60),
		Seconds: uint((ms / msPerSecond) % 60),
	}, true
}

// deltaMillis is floor((target-now) in ms) for target after now. It works
// on seconds and nanoseconds separately so it does not saturate the way
// time.Duration does past ~292 years.
func deltaMillis(target, now time.Time) int64 {
	secs := target.Unix() - now.Unix()
	nanos := int64(target.Nanosecond() - now.Nanosecond())
	if nanos < 0 {
		secs--
		nanos += int64(time.Second)
	}
	return secs*msPerSecond + nanos/int64(time.Millisecond)
}

// RemainingUntil is Remaining for an optional boundary. An unset boundary
// has no countdown.
func RemainingUntil(b Boundary, now time.Time) (Countdown, bool) {
	t, ok := b.Time()
	if !ok {
		return Countdown{}, false
	}
	return Remaining(t, now)
}

// TotalSeconds is the countdown expressed in whole seconds.
func (c Countdown) TotalSeconds() int64 {
	return int64(c.Days)*86400 + int64(c.Hours)*3600 + int64(c.Minutes)*60 + int64(c.Seconds)
}

// String renders the countdown as "1d 02h 03m 04s".
func (c Countdown) String() string {
	return fmt.Sprintf("%dd %02dh %02dm %02ds", c.Days, c.Hours, c.Minutes, c.Seconds)
}
