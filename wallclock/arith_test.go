// Copyright 2023 The Wallclock Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallclock

import (
	"testing"
	"time"
)

func TestAdjustingAdd(t *testing.T) {
	for _, test := range []struct {
		time Time
		d    Duration
		want Time
		adj  DateAdjustment
	}{
		{mustTime(t, 12, 0, 0, 0), Hours(2), mustTime(t, 14, 0, 0, 0), NoAdjustment},
		{mustTime(t, 12, 0, 0, 0), Hours(-2), mustTime(t, 10, 0, 0, 0), NoAdjustment},
		{mustTime(t, 23, 0, 0, 0), Hours(2), mustTime(t, 1, 0, 0, 0), NextDay},
		{mustTime(t, 0, 0, 1, 0), Seconds(-2), mustTime(t, 23, 59, 59, 0), PreviousDay},
		{mustTime(t, 23, 59, 59, 0), Seconds(2), mustTime(t, 0, 0, 1, 0), NextDay},
		// Only the sub-day part of the duration applies.
		{mustTime(t, 12, 0, 0, 0), Hours(25), mustTime(t, 13, 0, 0, 0), NoAdjustment},
		{mustTime(t, 12, 0, 0, 0), Hours(-25), mustTime(t, 11, 0, 0, 0), NoAdjustment},
		// Nanosecond carry chains all the way to the date signal.
		{Max, Nanoseconds(1), Midnight, NextDay},
		{Midnight, Nanoseconds(-1), Max, PreviousDay},
		// Mixed-sign intermediate fields normalize correctly.
		{mustTime(t, 1, 0, 0, 0), Milliseconds(-1500), mustTime(t, 0, 59, 58, 500_000_000), NoAdjustment},
		{mustTime(t, 0, 0, 0, 500_000_000), Milliseconds(1500), mustTime(t, 0, 0, 2, 0), NoAdjustment},
		{Midnight, Duration{}, Midnight, NoAdjustment},
	} {
		got, adj := test.time.AdjustingAdd(test.d)
		if got != test.want || adj != test.adj {
			t.Errorf("%v.AdjustingAdd(%v) = (%v, %v), want (%v, %v)",
				test.time, test.d, got, adj, test.want, test.adj)
		}
	}
}

func TestAdjustingSub(t *testing.T) {
	for _, test := range []struct {
		time Time
		d    Duration
		want Time
		adj  DateAdjustment
	}{
		{mustTime(t, 14, 0, 0, 0), Hours(2), mustTime(t, 12, 0, 0, 0), NoAdjustment},
		{mustTime(t, 0, 0, 0, 0), Hours(1), mustTime(t, 23, 0, 0, 0), PreviousDay},
		{mustTime(t, 23, 59, 59, 0), Seconds(-2), mustTime(t, 0, 0, 1, 0), NextDay},
		{Midnight, Nanoseconds(1), Max, PreviousDay},
		{Max, Nanoseconds(-1), Midnight, NextDay},
		{mustTime(t, 12, 0, 0, 0), Hours(25), mustTime(t, 11, 0, 0, 0), NoAdjustment},
	} {
		got, adj := test.time.AdjustingSub(test.d)
		if got != test.want || adj != test.adj {
			t.Errorf("%v.AdjustingSub(%v) = (%v, %v), want (%v, %v)",
				test.time, test.d, got, adj, test.want, test.adj)
		}
	}
}

func TestAdjustingAddStd(t *testing.T) {
	for _, test := range []struct {
		time    Time
		d       time.Duration
		want    Time
		nextDay bool
	}{
		{mustTime(t, 12, 0, 0, 0), 2 * time.Hour, mustTime(t, 14, 0, 0, 0), false},
		{mustTime(t, 23, 59, 59, 0), 2 * time.Second, mustTime(t, 0, 0, 1, 0), true},
		{Max, time.Nanosecond, Midnight, true},
		{mustTime(t, 12, 0, 0, 0), 25 * time.Hour, mustTime(t, 13, 0, 0, 0), false},
		{Midnight, 0, Midnight, false},
	} {
		got, nextDay := test.time.AdjustingAddStd(test.d)
		if got != test.want || nextDay != test.nextDay {
			t.Errorf("%v.AdjustingAddStd(%v) = (%v, %t), want (%v, %t)",
				test.time, test.d, got, nextDay, test.want, test.nextDay)
		}
	}
}

func TestAdjustingSubStd(t *testing.T) {
	for _, test := range []struct {
		time        Time
		d           time.Duration
		want        Time
		previousDay bool
	}{
		{mustTime(t, 14, 0, 0, 0), 2 * time.Hour, mustTime(t, 12, 0, 0, 0), false},
		{mustTime(t, 0, 0, 1, 0), 2 * time.Second, mustTime(t, 23, 59, 59, 0), true},
		{Midnight, time.Nanosecond, Max, true},
		{mustTime(t, 12, 0, 0, 0), 25 * time.Hour, mustTime(t, 11, 0, 0, 0), false},
	} {
		got, previousDay := test.time.AdjustingSubStd(test.d)
		if got != test.want || previousDay != test.previousDay {
			t.Errorf("%v.AdjustingSubStd(%v) = (%v, %t), want (%v, %t)",
				test.time, test.d, got, previousDay, test.want, test.previousDay)
		}
	}
}

func TestStdRejectsNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AdjustingAddStd(-1ns) did not panic")
		}
	}()
	Midnight.AdjustingAddStd(-time.Nanosecond)
}

func TestAddSubSymmetry(t *testing.T) {
	times := []Time{
		Midnight,
		Max,
		mustTime(t, 0, 0, 1, 0),
		mustTime(t, 12, 30, 45, 123_456_789),
		mustTime(t, 23, 0, 0, 1),
	}
	durations := []Duration{
		{},
		Nanoseconds(1),
		Nanoseconds(-1),
		Seconds(59),
		Seconds(-61),
		Minutes(59),
		Hours(23),
		Hours(-23),
		Milliseconds(1_999),
		DurationOf(3_599, 999_999_999),
	}
	for _, tm := range times {
		for _, d := range durations {
			if got := tm.Add(d).Sub(d); got != tm {
				t.Errorf("(%v + %v) - %v = %v, want %v", tm, d, d, got, tm)
			}
			if got := tm.Sub(d).Add(d); got != tm {
				t.Errorf("(%v - %v) + %v = %v, want %v", tm, d, d, got, tm)
			}
		}
	}
}

func TestSince(t *testing.T) {
	for _, test := range []struct {
		a, b Time
		want Duration
	}{
		{Midnight, Midnight, Duration{}},
		{mustTime(t, 1, 0, 0, 0), Midnight, Hours(1)},
		{Midnight, mustTime(t, 1, 0, 0, 0), Hours(-1)},
		{Midnight, mustTime(t, 23, 0, 0, 0), Hours(-23)},
		{Max, Midnight, DurationOf(86_399, 999_999_999)},
		{Midnight, Max, DurationOf(-86_399, -999_999_999)},
		// Sub-second borrow against a positive whole-second gap.
		{mustTime(t, 0, 0, 1, 0), mustTime(t, 0, 0, 0, 999_999_999), Nanoseconds(1)},
		{mustTime(t, 0, 0, 0, 999_999_999), mustTime(t, 0, 0, 1, 0), Nanoseconds(-1)},
		// Equal clock readings are exactly zero, never ±24h.
		{mustTime(t, 12, 30, 45, 678), mustTime(t, 12, 30, 45, 678), Duration{}},
	} {
		if got := test.a.Since(test.b); got != test.want {
			t.Errorf("%v.Since(%v) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

// TestSinceAgreesWithCascade cross-checks the independent per-field
// difference in Since against adding the result back on.
func TestSinceAgreesWithCascade(t *testing.T) {
	samples := []Time{
		Midnight,
		Max,
		mustTime(t, 0, 59, 0, 0),
		mustTime(t, 5, 0, 59, 1),
		mustTime(t, 13, 37, 21, 987_654_321),
		mustTime(t, 23, 0, 0, 500_000_000),
	}
	for _, a := range samples {
		for _, b := range samples {
			d := a.Since(b)
			got, _ := b.AdjustingAdd(d)
			if got != a {
				t.Errorf("%v + (%v.Since(%v) = %v) = %v, want %v", b, a, b, d, got, a)
			}
			if want := d.Neg(); b.Since(a) != want {
				t.Errorf("%v.Since(%v) = %v, want %v", b, a, b.Since(a), want)
			}
		}
	}
}

func TestDateAdjustmentString(t *testing.T) {
	for _, test := range []struct {
		adj  DateAdjustment
		want string
	}{
		{NoAdjustment, "none"},
		{NextDay, "next day"},
		{PreviousDay, "previous day"},
		{DateAdjustment(42), "invalid adjustment"},
	} {
		if got := test.adj.String(); got != test.want {
			t.Errorf("%d.String() = %q, want %q", int(test.adj), got, test.want)
		}
	}
}
