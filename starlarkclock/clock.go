// Copyright 2023 The Wallclock Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package starlarkclock exposes wallclock times and durations to
// Starlark programs.
//
// The module's operators mirror the Go API:
//
//	time + duration = time      (wrapping around midnight)
//	time - duration = time      (wrapping around midnight)
//	time - time     = duration  (same-day gap)
//	duration ± duration = duration
//	duration * int  = duration
//	duration / int  = duration
//
// The wrapping operators discard the day-boundary signal; scripts that
// need it should compare against the operands instead.
package starlarkclock // import "go.wallclock.net/starlarkclock"

import (
	"fmt"
	gotime "time"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"go.wallclock.net/wallclock"
)

// ModuleName is the name under which Module should be predeclared.
const ModuleName = "clock"

// Module is a Starlark module of wall-clock functions and constants.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"time":       starlark.NewBuiltin("time", newTime),
		"parse_time": starlark.NewBuiltin("parse_time", parseTime),
		"duration":   starlark.NewBuiltin("duration", newDuration),

		"midnight": Time(wallclock.Midnight),
		"max":      Time(wallclock.Max),

		"nanosecond":  Duration(wallclock.Nanoseconds(1)),
		"microsecond": Duration(wallclock.Microseconds(1)),
		"millisecond": Duration(wallclock.Milliseconds(1)),
		"second":      Duration(wallclock.Seconds(1)),
		"minute":      Duration(wallclock.Minutes(1)),
		"hour":        Duration(wallclock.Hours(1)),
	},
}

func newTime(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var hour, minute, second, nanosecond int
	if err := starlark.UnpackArgs("time", args, kwargs,
		"hour?", &hour, "minute?", &minute, "second?", &second, "nanosecond?", &nanosecond); err != nil {
		return nil, err
	}
	t, err := wallclock.MakeNano(hour, minute, second, nanosecond)
	if err != nil {
		return nil, err
	}
	return Time(t), nil
}

func parseTime(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs("parse_time", args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	t, err := wallclock.Parse(s)
	if err != nil {
		return nil, err
	}
	return Time(t), nil
}

func newDuration(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var d Duration
	if err := starlark.UnpackPositionalArgs("duration", args, kwargs, 1, &d); err != nil {
		return nil, err
	}
	return d, nil
}

// Time is the Starlark representation of a wallclock.Time.
type Time wallclock.Time

var (
	_ starlark.Value      = Time{}
	_ starlark.Comparable = Time{}
	_ starlark.HasAttrs   = Time{}
	_ starlark.HasBinary  = Time{}
)

// String implements the Stringer interface.
func (t Time) String() string { return wallclock.Time(t).String() }

// Type returns "clock.time".
func (t Time) Type() string { return "clock.time" }

// Freeze is a no-op: a Time is already immutable.
func (t Time) Freeze() {}

// Truth reports all times as true, including midnight.
func (t Time) Truth() starlark.Bool { return starlark.True }

// Hash returns a function of the four fields, as required by the
// starlark.Value interface.
func (t Time) Hash() (uint32, error) {
	x := wallclock.Time(t)
	n := uint64(x.Hour()*3600+x.Minute()*60+x.Second())*1_000_000_000 + uint64(x.Nanosecond())
	return uint32(n) ^ uint32(n>>32), nil
}

// CompareSameType implements lexicographic ordering on the clock
// fields, as required by the starlark.Comparable interface.
func (t Time) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return threeway(op, wallclock.Time(t).Compare(wallclock.Time(y.(Time)))), nil
}

// Attr gets a field value, implementing dot expression support.
func (t Time) Attr(name string) (starlark.Value, error) {
	x := wallclock.Time(t)
	switch name {
	case "hour":
		return starlark.MakeInt(x.Hour()), nil
	case "minute":
		return starlark.MakeInt(x.Minute()), nil
	case "second":
		return starlark.MakeInt(x.Second()), nil
	case "millisecond":
		return starlark.MakeInt(x.Millisecond()), nil
	case "microsecond":
		return starlark.MakeInt(x.Microsecond()), nil
	case "nanosecond":
		return starlark.MakeInt(x.Nanosecond()), nil
	}
	return nil, nil // no such attribute
}

// AttrNames lists the available dot expression strings.
func (t Time) AttrNames() []string {
	return []string{
		"hour",
		"microsecond",
		"millisecond",
		"minute",
		"nanosecond",
		"second",
	}
}

// Binary implements the operators involving a time operand:
//
//	time + duration = time
//	time - duration = time
//	time - time     = duration
func (t Time) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	x := wallclock.Time(t)

	switch op {
	case syntax.PLUS:
		if y, ok := yV.(Duration); ok {
			return Time(x.Add(wallclock.Duration(y))), nil
		}
	case syntax.MINUS:
		switch y := yV.(type) {
		case Duration:
			if side == starlark.Left {
				return Time(x.Sub(wallclock.Duration(y))), nil
			}
		case Time:
			if side == starlark.Left {
				return Duration(x.Since(wallclock.Time(y))), nil
			}
			return Duration(wallclock.Time(y).Since(x)), nil
		}
	}
	return nil, nil
}

// Duration is the Starlark representation of a wallclock.Duration.
type Duration wallclock.Duration

var (
	_ starlark.Value      = Duration{}
	_ starlark.Comparable = Duration{}
	_ starlark.HasAttrs   = Duration{}
	_ starlark.HasBinary  = Duration{}
	_ starlark.Unpacker   = (*Duration)(nil)
)

// Unpack converts a Starlark value to a Duration: an existing
// duration, an int count of nanoseconds, or a string accepted by
// time.ParseDuration.
func (d *Duration) Unpack(v starlark.Value) error {
	switch x := v.(type) {
	case Duration:
		*d = x
		return nil
	case starlark.Int:
		i, ok := x.Int64()
		if !ok {
			return fmt.Errorf("int value out of range (want signed 64-bit value)")
		}
		*d = Duration(wallclock.Nanoseconds(i))
		return nil
	case starlark.String:
		sd, err := gotime.ParseDuration(string(x))
		if err != nil {
			return err
		}
		*d = Duration(wallclock.FromStd(sd))
		return nil
	}
	return fmt.Errorf("cannot convert %s to %s", v.Type(), Duration{}.Type())
}

// String implements the Stringer interface.
func (d Duration) String() string { return wallclock.Duration(d).String() }

// Type returns "clock.duration".
func (d Duration) Type() string { return "clock.duration" }

// Freeze is a no-op: a Duration is already immutable.
func (d Duration) Freeze() {}

// Truth reports whether the duration is nonzero.
func (d Duration) Truth() starlark.Bool {
	return starlark.Bool(!wallclock.Duration(d).IsZero())
}

// Hash returns a function of the seconds and nanoseconds fields, as
// required by the starlark.Value interface.
func (d Duration) Hash() (uint32, error) {
	x := wallclock.Duration(d)
	n := uint64(x.WholeSeconds()) ^ uint64(x.SubsecNanoseconds())
	return uint32(n) ^ uint32(n>>32), nil
}

// CompareSameType implements ordering by length, as required by the
// starlark.Comparable interface.
func (d Duration) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return threeway(op, wallclock.Duration(d).Compare(wallclock.Duration(y.(Duration)))), nil
}

// Attr gets a value for a string attribute, implementing dot
// expression support.
func (d Duration) Attr(name string) (starlark.Value, error) {
	x := wallclock.Duration(d)
	seconds := float64(x.WholeSeconds()) + float64(x.SubsecNanoseconds())/1e9
	switch name {
	case "hours":
		return starlark.Float(seconds / 3600), nil
	case "minutes":
		return starlark.Float(seconds / 60), nil
	case "seconds":
		return starlark.Float(seconds), nil
	case "milliseconds":
		return starlark.MakeInt64(x.WholeMilliseconds()), nil
	case "nanoseconds":
		sd, ok := x.Std()
		if !ok {
			return nil, fmt.Errorf("%s out of range of 64-bit nanoseconds", d.Type())
		}
		return starlark.MakeInt64(int64(sd)), nil
	}
	return nil, fmt.Errorf("unrecognized %s attribute %q", d.Type(), name)
}

// AttrNames lists available dot expression strings.
func (d Duration) AttrNames() []string {
	return []string{
		"hours",
		"milliseconds",
		"minutes",
		"nanoseconds",
		"seconds",
	}
}

// Binary implements the operators involving a duration operand:
//
//	duration + duration = duration
//	duration + time     = time
//	duration - duration = duration
//	duration * int      = duration
//	int * duration      = duration
//	duration / int      = duration
func (d Duration) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	x := wallclock.Duration(d)

	switch op {
	case syntax.PLUS:
		switch y := yV.(type) {
		case Duration:
			return Duration(x.AddDuration(wallclock.Duration(y))), nil
		case Time:
			return Time(wallclock.Time(y).Add(x)), nil
		}

	case syntax.MINUS:
		if y, ok := yV.(Duration); ok {
			if side == starlark.Left {
				return Duration(x.SubDuration(wallclock.Duration(y))), nil
			}
			return Duration(wallclock.Duration(y).SubDuration(x)), nil
		}

	case syntax.STAR:
		if y, ok := yV.(starlark.Int); ok {
			i, ok := y.Int64()
			if !ok {
				return nil, fmt.Errorf("int value out of range (want signed 64-bit value)")
			}
			return Duration(x.Mul(i)), nil
		}

	case syntax.SLASH:
		if y, ok := yV.(starlark.Int); ok && side == starlark.Left {
			i, ok := y.Int64()
			if !ok {
				return nil, fmt.Errorf("int value out of range (want signed 64-bit value)")
			}
			if i == 0 {
				return nil, fmt.Errorf("%s division by zero", d.Type())
			}
			return Duration(x.Div(i)), nil
		}
	}
	return nil, nil
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op syntax.Token, cmp int) bool {
	switch op {
	case syntax.EQL:
		return cmp == 0
	case syntax.NEQ:
		return cmp != 0
	case syntax.LE:
		return cmp <= 0
	case syntax.LT:
		return cmp < 0
	case syntax.GE:
		return cmp >= 0
	case syntax.GT:
		return cmp > 0
	}
	panic(op)
}
