// Copyright 2023 The Wallclock Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallclock

import "time"

// A DateAdjustment reports whether a Time computation crossed a
// midnight boundary, and in which direction. Callers holding a
// calendar date use it to move the date by exactly one day.
type DateAdjustment int

const (
	NoAdjustment DateAdjustment = iota // result fell on the same day
	NextDay                            // carried forward past midnight
	PreviousDay                        // borrowed backward past midnight
)

func (a DateAdjustment) String() string {
	switch a {
	case NoAdjustment:
		return "none"
	case NextDay:
		return "next day"
	case PreviousDay:
		return "previous day"
	}
	return "invalid adjustment"
}

// cascade normalizes *from into the half-open range [min, max),
// carrying one step into *to. Call sites combine values whose
// sub-unit remainders are each less than one unit of the next larger
// granularity, so a single correction always suffices.
func cascade(from *int64, min, max int64, to *int64) {
	if *from >= max {
		*from -= max - min
		*to++
	} else if *from < min {
		*from += max - min
		*to--
	}
}

// AdjustingAdd adds the sub-day part of d to t, wrapping around
// midnight, and reports whether the result fell on another day.
func (t Time) AdjustingAdd(d Duration) (Time, DateAdjustment) {
	nanosecond := int64(t.nanosecond) + int64(d.SubsecNanoseconds())
	second := int64(t.second) + d.WholeSeconds()%60
	minute := int64(t.minute) + d.WholeMinutes()%60
	hour := int64(t.hour) + d.WholeHours()%24

	adjustment := NoAdjustment
	cascade(&nanosecond, 0, nanosPerSecond, &second)
	cascade(&second, 0, 60, &minute)
	cascade(&minute, 0, 60, &hour)
	if hour >= 24 {
		hour -= 24
		adjustment = NextDay
	} else if hour < 0 {
		hour += 24
		adjustment = PreviousDay
	}
	return Time{int(hour), int(minute), int(second), int(nanosecond)}, adjustment
}

// AdjustingSub subtracts the sub-day part of d from t, wrapping around
// midnight, and reports whether the result fell on another day.
func (t Time) AdjustingSub(d Duration) (Time, DateAdjustment) {
	nanosecond := int64(t.nanosecond) - int64(d.SubsecNanoseconds())
	second := int64(t.second) - d.WholeSeconds()%60
	minute := int64(t.minute) - d.WholeMinutes()%60
	hour := int64(t.hour) - d.WholeHours()%24

	adjustment := NoAdjustment
	cascade(&nanosecond, 0, nanosPerSecond, &second)
	cascade(&second, 0, 60, &minute)
	cascade(&minute, 0, 60, &hour)
	if hour >= 24 {
		hour -= 24
		adjustment = NextDay
	} else if hour < 0 {
		hour += 24
		adjustment = PreviousDay
	}
	return Time{int(hour), int(minute), int(second), int(nanosecond)}, adjustment
}

// AdjustingAddStd adds the sub-day part of the standard library
// duration d to t, wrapping around midnight, and reports whether the
// result fell on the next day. A non-negative duration can never roll
// more than one midnight, so the signal is a single bool.
//
// AdjustingAddStd panics if d is negative; use AdjustingAdd with a
// signed Duration for arithmetic that may go backward.
func (t Time) AdjustingAddStd(d time.Duration) (Time, bool) {
	if d < 0 {
		panic("wallclock: negative duration passed to AdjustingAddStd")
	}
	seconds := int64(d / time.Second)
	nanosecond := int64(t.nanosecond) + int64(d%time.Second)
	second := int64(t.second) + seconds%60
	minute := int64(t.minute) + (seconds/60)%60
	hour := int64(t.hour) + (seconds/3600)%24

	isNextDay := false
	cascade(&nanosecond, 0, nanosPerSecond, &second)
	cascade(&second, 0, 60, &minute)
	cascade(&minute, 0, 60, &hour)
	if hour >= 24 {
		hour -= 24
		isNextDay = true
	}
	return Time{int(hour), int(minute), int(second), int(nanosecond)}, isNextDay
}

// AdjustingSubStd subtracts the sub-day part of the standard library
// duration d from t, wrapping around midnight, and reports whether the
// result fell on the previous day.
//
// AdjustingSubStd panics if d is negative.
func (t Time) AdjustingSubStd(d time.Duration) (Time, bool) {
	if d < 0 {
		panic("wallclock: negative duration passed to AdjustingSubStd")
	}
	seconds := int64(d / time.Second)
	nanosecond := int64(t.nanosecond) - int64(d%time.Second)
	second := int64(t.second) - seconds%60
	minute := int64(t.minute) - (seconds/60)%60
	hour := int64(t.hour) - (seconds/3600)%24

	isPreviousDay := false
	cascade(&nanosecond, 0, nanosPerSecond, &second)
	cascade(&second, 0, 60, &minute)
	cascade(&minute, 0, 60, &hour)
	if hour < 0 {
		hour += 24
		isPreviousDay = true
	}
	return Time{int(hour), int(minute), int(second), int(nanosecond)}, isPreviousDay
}

// Add adds the sub-day part of d to t, wrapping around midnight and
// discarding the day-boundary signal.
func (t Time) Add(d Duration) Time {
	u, _ := t.AdjustingAdd(d)
	return u
}

// Sub subtracts the sub-day part of d from t, wrapping around midnight
// and discarding the day-boundary signal.
func (t Time) Sub(d Duration) Time {
	u, _ := t.AdjustingSub(d)
	return u
}

// AddStd is like Add for a standard library duration.
// It panics if d is negative.
func (t Time) AddStd(d time.Duration) Time {
	u, _ := t.AdjustingAddStd(d)
	return u
}

// SubStd is like Sub for a standard library duration.
// It panics if d is negative.
func (t Time) SubStd(d time.Duration) Time {
	u, _ := t.AdjustingSubStd(d)
	return u
}

// Since returns the signed Duration t-u, assuming t and u fall on the
// same calendar day. The result is in the open interval (-24h, 24h);
// in particular Since of two equal times is zero, never ±24h.
//
// The per-field differences need not be individually in range: each is
// multiplied by its fixed radix and summed, which absorbs any borrow,
// so only the nanosecond difference requires an explicit carry.
func (t Time) Since(u Time) Duration {
	hourDiff := int64(t.hour - u.hour)
	minuteDiff := int64(t.minute - u.minute)
	secondDiff := int64(t.second - u.second)
	nanosecondDiff := int64(t.nanosecond - u.nanosecond)

	seconds := hourDiff*3600 + minuteDiff*60 + secondDiff
	switch {
	case seconds > 0 && nanosecondDiff < 0:
		seconds--
		nanosecondDiff += nanosPerSecond
	case seconds < 0 && nanosecondDiff > 0:
		seconds++
		nanosecondDiff -= nanosPerSecond
	}
	return Duration{seconds, int32(nanosecondDiff)}
}
