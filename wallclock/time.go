// Copyright 2023 The Wallclock Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wallclock provides a wall-clock time-of-day value type with
// nanosecond resolution, independent of any calendar date.
//
// A Time is an immutable (hour, minute, second, nanosecond) record.
// Arithmetic against a signed Duration or a standard library
// time.Duration wraps around midnight; the adjusting variants
// additionally report whether the day boundary was crossed, and in
// which direction, so that a caller holding a calendar date can bump
// it by one day.
//
// Every minute has exactly 60 seconds: leap seconds are not
// representable, and neither is 24:00:00.
package wallclock // import "go.wallclock.net/wallclock"

// A Time represents a clock time within a day, to nanosecond precision.
//
// The zero value is midnight. Time values are comparable with == and
// are freely copyable; all methods are safe for concurrent use.
type Time struct {
	hour       int // 0..23
	minute     int // 0..59
	second     int // 0..59
	nanosecond int // 0..999_999_999
}

// Midnight is the first instant of the day, 0:00.
var Midnight = Time{}

// Max is the last representable instant of the day, 23:59:59.999999999.
var Max = Time{hour: 23, minute: 59, second: 59, nanosecond: 999_999_999}

// Make returns the Time with the given hour, minute, and second.
func Make(hour, minute, second int) (Time, error) {
	if err := checkClock(hour, minute, second); err != nil {
		return Time{}, err
	}
	return Time{hour, minute, second, 0}, nil
}

// MakeMilli returns the Time with the given hour, minute, second, and
// millisecond.
func MakeMilli(hour, minute, second, millisecond int) (Time, error) {
	if err := checkClock(hour, minute, second); err != nil {
		return Time{}, err
	}
	if err := checkRange("millisecond", millisecond, 0, 999); err != nil {
		return Time{}, err
	}
	return Time{hour, minute, second, millisecond * nanosPerMilli}, nil
}

// MakeMicro returns the Time with the given hour, minute, second, and
// microsecond.
func MakeMicro(hour, minute, second, microsecond int) (Time, error) {
	if err := checkClock(hour, minute, second); err != nil {
		return Time{}, err
	}
	if err := checkRange("microsecond", microsecond, 0, 999_999); err != nil {
		return Time{}, err
	}
	return Time{hour, minute, second, microsecond * nanosPerMicro}, nil
}

// MakeNano returns the Time with the given hour, minute, second, and
// nanosecond.
func MakeNano(hour, minute, second, nanosecond int) (Time, error) {
	if err := checkClock(hour, minute, second); err != nil {
		return Time{}, err
	}
	if err := checkRange("nanosecond", nanosecond, 0, nanosPerSecond-1); err != nil {
		return Time{}, err
	}
	return Time{hour, minute, second, nanosecond}, nil
}

func checkClock(hour, minute, second int) error {
	if err := checkRange("hour", hour, 0, 23); err != nil {
		return err
	}
	if err := checkRange("minute", minute, 0, 59); err != nil {
		return err
	}
	return checkRange("second", second, 0, 59)
}

// Hour returns the hour within the day, in the range [0, 23].
func (t Time) Hour() int { return t.hour }

// Minute returns the minute within the hour, in the range [0, 59].
func (t Time) Minute() int { return t.minute }

// Second returns the second within the minute, in the range [0, 59].
func (t Time) Second() int { return t.second }

// Millisecond returns the millisecond within the second, in the range [0, 999].
func (t Time) Millisecond() int { return t.nanosecond / nanosPerMilli }

// Microsecond returns the microsecond within the second, in the range [0, 999999].
func (t Time) Microsecond() int { return t.nanosecond / nanosPerMicro }

// Nanosecond returns the nanosecond within the second, in the range [0, 999999999].
func (t Time) Nanosecond() int { return t.nanosecond }

// Clock returns the hour, minute, and second of t.
func (t Time) Clock() (hour, minute, second int) {
	return t.hour, t.minute, t.second
}

// ClockMilli returns the hour, minute, second, and millisecond of t.
func (t Time) ClockMilli() (hour, minute, second, millisecond int) {
	return t.hour, t.minute, t.second, t.Millisecond()
}

// ClockMicro returns the hour, minute, second, and microsecond of t.
func (t Time) ClockMicro() (hour, minute, second, microsecond int) {
	return t.hour, t.minute, t.second, t.Microsecond()
}

// ClockNano returns the hour, minute, second, and nanosecond of t.
func (t Time) ClockNano() (hour, minute, second, nanosecond int) {
	return t.hour, t.minute, t.second, t.nanosecond
}

// WithHour returns a copy of t with the hour replaced.
func (t Time) WithHour(hour int) (Time, error) {
	if err := checkRange("hour", hour, 0, 23); err != nil {
		return Time{}, err
	}
	t.hour = hour
	return t, nil
}

// WithMinute returns a copy of t with the minute replaced.
func (t Time) WithMinute(minute int) (Time, error) {
	if err := checkRange("minute", minute, 0, 59); err != nil {
		return Time{}, err
	}
	t.minute = minute
	return t, nil
}

// WithSecond returns a copy of t with the second replaced.
func (t Time) WithSecond(second int) (Time, error) {
	if err := checkRange("second", second, 0, 59); err != nil {
		return Time{}, err
	}
	t.second = second
	return t, nil
}

// WithMillisecond returns a copy of t with the fractional second
// replaced by the given millisecond.
func (t Time) WithMillisecond(millisecond int) (Time, error) {
	if err := checkRange("millisecond", millisecond, 0, 999); err != nil {
		return Time{}, err
	}
	t.nanosecond = millisecond * nanosPerMilli
	return t, nil
}

// WithMicrosecond returns a copy of t with the fractional second
// replaced by the given microsecond.
func (t Time) WithMicrosecond(microsecond int) (Time, error) {
	if err := checkRange("microsecond", microsecond, 0, 999_999); err != nil {
		return Time{}, err
	}
	t.nanosecond = microsecond * nanosPerMicro
	return t, nil
}

// WithNanosecond returns a copy of t with the fractional second replaced.
func (t Time) WithNanosecond(nanosecond int) (Time, error) {
	if err := checkRange("nanosecond", nanosecond, 0, nanosPerSecond-1); err != nil {
		return Time{}, err
	}
	t.nanosecond = nanosecond
	return t, nil
}

// Compare returns -1, 0, or +1 depending on whether t is before, equal
// to, or after u. The ordering is lexicographic on (hour, minute,
// second, nanosecond).
func (t Time) Compare(u Time) int {
	switch {
	case t.hour != u.hour:
		return signum(t.hour - u.hour)
	case t.minute != u.minute:
		return signum(t.minute - u.minute)
	case t.second != u.second:
		return signum(t.second - u.second)
	default:
		return signum(t.nanosecond - u.nanosecond)
	}
}

// Before reports whether t is earlier in the day than u.
func (t Time) Before(u Time) bool { return t.Compare(u) < 0 }

// After reports whether t is later in the day than u.
func (t Time) After(u Time) bool { return t.Compare(u) > 0 }

// Equal reports whether t and u denote the same instant of the day.
// It is equivalent to t == u.
func (t Time) Equal(u Time) bool { return t == u }

func signum(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return +1
	}
	return 0
}
