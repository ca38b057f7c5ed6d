// Copyright 2023 The Wallclock Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallclock

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// String renders t as "H:MM:SS.fff…". The hour carries no leading
// zero. The fractional part uses the fewest digits that represent the
// nanosecond value exactly, with a minimum of one digit, so 0:00
// renders as "0:00:00.0" and 999 milliseconds as ".999" rather than
// ".999000000".
func (t Time) String() string {
	value, width := t.nanosecond, 9
	for width > 1 && value%10 == 0 {
		value /= 10
		width--
	}
	return fmt.Sprintf("%d:%02d:%02d.%0*d", t.hour, t.minute, t.second, width, value)
}

// Parse converts a string produced by String, or a prefix of one,
// back into a Time. It accepts "H:MM", "H:MM:SS", and "H:MM:SS.fff…"
// with up to nine fractional digits. Out-of-range components are
// reported as a *ComponentRangeError.
func Parse(s string) (Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Time{}, fmt.Errorf("wallclock: cannot parse %q: want H:MM, H:MM:SS, or H:MM:SS.fff", s)
	}

	hour, err := parseComponent(s, parts[0])
	if err != nil {
		return Time{}, err
	}
	minute, err := parseComponent(s, parts[1])
	if err != nil {
		return Time{}, err
	}

	second, nanosecond := 0, 0
	if len(parts) == 3 {
		sec, frac, haveFrac := strings.Cut(parts[2], ".")
		if second, err = parseComponent(s, sec); err != nil {
			return Time{}, err
		}
		if haveFrac {
			if nanosecond, err = parseFraction(s, frac); err != nil {
				return Time{}, err
			}
		}
	}
	return MakeNano(hour, minute, second, nanosecond)
}

func parseComponent(input, s string) (int, error) {
	if s == "" || len(s) > 2 {
		return 0, fmt.Errorf("wallclock: cannot parse %q: malformed component %q", input, s)
	}
	n := 0
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("wallclock: cannot parse %q: malformed component %q", input, s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// parseFraction interprets frac as the leading digits of a nanosecond
// count, so "5" means half a second and "000000001" a nanosecond.
func parseFraction(input, frac string) (int, error) {
	if frac == "" || len(frac) > 9 {
		return 0, fmt.Errorf("wallclock: cannot parse %q: malformed fraction %q", input, frac)
	}
	n := 0
	for _, c := range []byte(frac) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("wallclock: cannot parse %q: malformed fraction %q", input, frac)
		}
		n = n*10 + int(c-'0')
	}
	for i := len(frac); i < 9; i++ {
		n *= 10
	}
	return n, nil
}

// MarshalText implements encoding.TextMarshaler using the same
// representation as String.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; the time is
// expected in a form accepted by Parse.
func (t *Time) UnmarshalText(text []byte) error {
	u, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = u
	return nil
}

// marshaledLen is the size of the binary encoding: one byte each for
// hour, minute, and second, then the nanosecond as a big-endian uint32.
const marshaledLen = 7

// MarshalBinary implements encoding.BinaryMarshaler. The four fields
// are the complete state, so the encoding round-trips exactly.
func (t Time) MarshalBinary() ([]byte, error) {
	b := make([]byte, marshaledLen)
	b[0] = byte(t.hour)
	b[1] = byte(t.minute)
	b[2] = byte(t.second)
	binary.BigEndian.PutUint32(b[3:], uint32(t.nanosecond))
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Field ranges
// are re-validated, so a corrupted encoding cannot produce an invalid
// Time.
func (t *Time) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledLen {
		return fmt.Errorf("wallclock: invalid binary encoding length %d", len(data))
	}
	u, err := MakeNano(int(data[0]), int(data[1]), int(data[2]), int(binary.BigEndian.Uint32(data[3:])))
	if err != nil {
		return err
	}
	*t = u
	return nil
}
