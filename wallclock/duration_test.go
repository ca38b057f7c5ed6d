// Copyright 2023 The Wallclock Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallclock

import (
	"math"
	"testing"
	"time"
)

func TestDurationFactories(t *testing.T) {
	for _, test := range []struct {
		got         Duration
		seconds     int64
		nanoseconds int32
	}{
		{Hours(2), 7_200, 0},
		{Hours(-2), -7_200, 0},
		{Minutes(90), 5_400, 0},
		{Seconds(61), 61, 0},
		{Milliseconds(1_500), 1, 500_000_000},
		{Milliseconds(-1_500), -1, -500_000_000},
		{Microseconds(999_999), 0, 999_999_000},
		{Nanoseconds(1_000_000_001), 1, 1},
		{Nanoseconds(-1), 0, -1},
		{DurationOf(1, -500_000_000), 0, 500_000_000},
		{DurationOf(-1, 500_000_000), 0, -500_000_000},
		{DurationOf(0, 2_500_000_000), 2, 500_000_000},
		{DurationOf(0, -2_500_000_000), -2, -500_000_000},
	} {
		if test.got.seconds != test.seconds || test.got.nanoseconds != test.nanoseconds {
			t.Errorf("got {%d, %d}, want {%d, %d}",
				test.got.seconds, test.got.nanoseconds, test.seconds, test.nanoseconds)
		}
	}
}

func TestDurationAccessors(t *testing.T) {
	d := DurationOf(3_725, 123_456_789) // 1h2m5s and change
	if got := d.WholeHours(); got != 1 {
		t.Errorf("WholeHours() = %d, want 1", got)
	}
	if got := d.WholeMinutes(); got != 62 {
		t.Errorf("WholeMinutes() = %d, want 62", got)
	}
	if got := d.WholeSeconds(); got != 3_725 {
		t.Errorf("WholeSeconds() = %d, want 3725", got)
	}
	if got := d.WholeMilliseconds(); got != 3_725_123 {
		t.Errorf("WholeMilliseconds() = %d, want 3725123", got)
	}
	if got := d.SubsecNanoseconds(); got != 123_456_789 {
		t.Errorf("SubsecNanoseconds() = %d, want 123456789", got)
	}

	neg := d.Neg()
	if got := neg.WholeHours(); got != -1 {
		t.Errorf("Neg().WholeHours() = %d, want -1", got)
	}
	if got := neg.SubsecNanoseconds(); got != -123_456_789 {
		t.Errorf("Neg().SubsecNanoseconds() = %d, want -123456789", got)
	}
	if neg.Abs() != d {
		t.Errorf("Neg().Abs() = %v, want %v", neg.Abs(), d)
	}
}

func TestDurationSign(t *testing.T) {
	for _, test := range []struct {
		d    Duration
		sign int
	}{
		{Duration{}, 0},
		{Nanoseconds(1), +1},
		{Nanoseconds(-1), -1},
		{Seconds(1), +1},
		{Seconds(-1), -1},
	} {
		if got := test.d.Sign(); got != test.sign {
			t.Errorf("%v.Sign() = %d, want %d", test.d, got, test.sign)
		}
		if got := test.d.IsZero(); got != (test.sign == 0) {
			t.Errorf("%v.IsZero() = %t", test.d, got)
		}
		if got := test.d.IsPositive(); got != (test.sign > 0) {
			t.Errorf("%v.IsPositive() = %t", test.d, got)
		}
		if got := test.d.IsNegative(); got != (test.sign < 0) {
			t.Errorf("%v.IsNegative() = %t", test.d, got)
		}
	}
}

func TestDurationArithmetic(t *testing.T) {
	if got := Seconds(1).AddDuration(Milliseconds(1_500)); got != Milliseconds(2_500) {
		t.Errorf("1s + 1500ms = %v, want 2.5s", got)
	}
	if got := Seconds(1).SubDuration(Milliseconds(1_500)); got != Milliseconds(-500) {
		t.Errorf("1s - 1500ms = %v, want -500ms", got)
	}
	if got := Milliseconds(1_500).Mul(3); got != Milliseconds(4_500) {
		t.Errorf("1500ms * 3 = %v, want 4.5s", got)
	}
	if got := Milliseconds(4_500).Div(3); got != Milliseconds(1_500) {
		t.Errorf("4500ms / 3 = %v, want 1.5s", got)
	}
	if got := Seconds(-7).Div(2); got != Milliseconds(-3_500) {
		t.Errorf("-7s / 2 = %v, want -3.5s", got)
	}
}

func TestDurationCompare(t *testing.T) {
	ordered := []Duration{
		Hours(-1),
		Milliseconds(-1_500),
		Nanoseconds(-1),
		{},
		Nanoseconds(1),
		Seconds(1),
		Milliseconds(1_500),
		Hours(1),
	}
	for i, a := range ordered {
		for j, b := range ordered {
			if got, want := a.Compare(b), signum(i-j); got != want {
				t.Errorf("Compare(%v, %v) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestDurationStd(t *testing.T) {
	for _, test := range []struct {
		d    Duration
		want time.Duration
	}{
		{Milliseconds(1_500), 1_500 * time.Millisecond},
		{Milliseconds(-1_500), -1_500 * time.Millisecond},
		{Duration{}, 0},
	} {
		got, ok := test.d.Std()
		if !ok || got != test.want {
			t.Errorf("%v.Std() = (%v, %t), want (%v, true)", test.d, got, ok, test.want)
		}
		if back := FromStd(test.want); back != test.d {
			t.Errorf("FromStd(%v) = %v, want %v", test.want, back, test.d)
		}
	}

	// A year of days squared is far past the int64 nanosecond range.
	if _, ok := Hours(math.MaxInt64 / 3_600).Std(); ok {
		t.Error("Std() of an enormous duration did not report overflow")
	}
	if _, ok := Hours(math.MinInt64 / 3_600).Std(); ok {
		t.Error("Std() of an enormous negative duration did not report overflow")
	}
}

func TestDurationString(t *testing.T) {
	for _, test := range []struct {
		d    Duration
		want string
	}{
		{Duration{}, "0s"},
		{Milliseconds(1_500), "1.5s"},
		{Hours(-2), "-2h0m0s"},
		{DurationOf(3_725, 0), "1h2m5s"},
	} {
		if got := test.d.String(); got != test.want {
			t.Errorf("%v.String() = %q, want %q", test.d, got, test.want)
		}
	}
}
