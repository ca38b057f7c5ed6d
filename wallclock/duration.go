// Copyright 2023 The Wallclock Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallclock

import (
	"fmt"
	"math"
	"time"
)

const (
	nanosPerMilli  = 1_000_000
	nanosPerMicro  = 1_000
	nanosPerSecond = 1_000_000_000
)

// A Duration is a signed span of time, held as whole seconds plus a
// sub-second nanosecond remainder. Unlike the standard library's
// time.Duration it is not limited to about 292 years.
//
// Invariant: seconds and nanoseconds never have opposite signs, and
// |nanoseconds| < 1e9. The zero value is the zero duration.
type Duration struct {
	seconds     int64
	nanoseconds int32
}

// DurationOf returns the Duration of the given seconds and
// nanoseconds, normalizing nanoseconds into the sub-second range.
func DurationOf(seconds int64, nanoseconds int64) Duration {
	seconds += nanoseconds / nanosPerSecond
	nanoseconds %= nanosPerSecond
	if seconds > 0 && nanoseconds < 0 {
		seconds--
		nanoseconds += nanosPerSecond
	} else if seconds < 0 && nanoseconds > 0 {
		seconds++
		nanoseconds -= nanosPerSecond
	}
	return Duration{seconds, int32(nanoseconds)}
}

// Hours returns the Duration of n whole hours.
func Hours(n int64) Duration { return Duration{seconds: n * 3600} }

// Minutes returns the Duration of n whole minutes.
func Minutes(n int64) Duration { return Duration{seconds: n * 60} }

// Seconds returns the Duration of n whole seconds.
func Seconds(n int64) Duration { return Duration{seconds: n} }

// Milliseconds returns the Duration of n milliseconds.
func Milliseconds(n int64) Duration {
	return Duration{n / 1_000, int32(n % 1_000 * nanosPerMilli)}
}

// Microseconds returns the Duration of n microseconds.
func Microseconds(n int64) Duration {
	return Duration{n / 1_000_000, int32(n % 1_000_000 * nanosPerMicro)}
}

// Nanoseconds returns the Duration of n nanoseconds.
func Nanoseconds(n int64) Duration {
	return Duration{n / nanosPerSecond, int32(n % nanosPerSecond)}
}

// FromStd converts a standard library duration.
func FromStd(d time.Duration) Duration {
	return Duration{int64(d / time.Second), int32(d % time.Second)}
}

// Std converts d to a standard library duration.
// The second result is false if d overflows the int64 nanosecond range.
func (d Duration) Std() (time.Duration, bool) {
	const scale = int64(time.Second)
	switch {
	case d.seconds > math.MaxInt64/scale,
		d.seconds == math.MaxInt64/scale && int64(d.nanoseconds) > math.MaxInt64%scale:
		return 0, false
	case d.seconds < math.MinInt64/scale,
		d.seconds == math.MinInt64/scale && int64(d.nanoseconds) < math.MinInt64%scale:
		return 0, false
	}
	return time.Duration(d.seconds*scale + int64(d.nanoseconds)), true
}

// WholeHours returns the number of whole hours in d, truncated toward zero.
func (d Duration) WholeHours() int64 { return d.seconds / 3600 }

// WholeMinutes returns the number of whole minutes in d, truncated toward zero.
func (d Duration) WholeMinutes() int64 { return d.seconds / 60 }

// WholeSeconds returns the number of whole seconds in d, truncated toward zero.
func (d Duration) WholeSeconds() int64 { return d.seconds }

// WholeMilliseconds returns the number of whole milliseconds in d,
// truncated toward zero.
func (d Duration) WholeMilliseconds() int64 {
	return d.seconds*1_000 + int64(d.nanoseconds)/nanosPerMilli
}

// SubsecNanoseconds returns the sub-second part of d in nanoseconds.
// It is negative exactly when d is negative, and its magnitude is
// always below one second.
func (d Duration) SubsecNanoseconds() int32 { return d.nanoseconds }

// IsZero reports whether d is the zero duration.
func (d Duration) IsZero() bool { return d == Duration{} }

// IsNegative reports whether d is strictly negative.
func (d Duration) IsNegative() bool { return d.Sign() < 0 }

// IsPositive reports whether d is strictly positive.
func (d Duration) IsPositive() bool { return d.Sign() > 0 }

// Sign returns -1, 0, or +1 depending on the sign of d.
func (d Duration) Sign() int {
	switch {
	case d.seconds < 0 || d.seconds == 0 && d.nanoseconds < 0:
		return -1
	case d.seconds > 0 || d.seconds == 0 && d.nanoseconds > 0:
		return +1
	}
	return 0
}

// Neg returns -d.
func (d Duration) Neg() Duration {
	return Duration{-d.seconds, -d.nanoseconds}
}

// Abs returns the absolute value of d.
func (d Duration) Abs() Duration {
	if d.Sign() < 0 {
		return d.Neg()
	}
	return d
}

// AddDuration returns d+e.
func (d Duration) AddDuration(e Duration) Duration {
	return DurationOf(d.seconds+e.seconds, int64(d.nanoseconds)+int64(e.nanoseconds))
}

// SubDuration returns d-e.
func (d Duration) SubDuration(e Duration) Duration {
	return DurationOf(d.seconds-e.seconds, int64(d.nanoseconds)-int64(e.nanoseconds))
}

// Mul returns d scaled by the integer n.
func (d Duration) Mul(n int64) Duration {
	return DurationOf(d.seconds*n, int64(d.nanoseconds)*n)
}

// Div returns d divided by the integer n, truncated toward zero.
// It panics if n is zero.
func (d Duration) Div(n int64) Duration {
	total := d.seconds%n*nanosPerSecond + int64(d.nanoseconds)
	return DurationOf(d.seconds/n, total/n)
}

// Compare returns -1, 0, or +1 depending on whether d is shorter than,
// equal to, or longer than e.
func (d Duration) Compare(e Duration) int {
	switch {
	case d.seconds != e.seconds:
		if d.seconds < e.seconds {
			return -1
		}
		return +1
	case d.nanoseconds != e.nanoseconds:
		if d.nanoseconds < e.nanoseconds {
			return -1
		}
		return +1
	}
	return 0
}

// String formats d in the standard library's duration notation.
// Durations beyond the int64 nanosecond range fall back to a plain
// seconds-and-nanoseconds form.
func (d Duration) String() string {
	if sd, ok := d.Std(); ok {
		return sd.String()
	}
	return fmt.Sprintf("%ds%dns", d.seconds, d.nanoseconds)
}
