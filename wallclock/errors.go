// Copyright 2023 The Wallclock Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallclock

import "fmt"

// A ComponentRangeError indicates that a value provided for a named
// time component was outside its valid range. Both bounds are
// inclusive. No Time is constructed when it is returned: the library
// never clamps or truncates.
type ComponentRangeError struct {
	Name     string // component name, e.g. "hour"
	Min, Max int64  // inclusive bounds
	Value    int64  // the offending value
}

func (e *ComponentRangeError) Error() string {
	return fmt.Sprintf("%s must be in the range %d..%d, got %d", e.Name, e.Min, e.Max, e.Value)
}

func checkRange(name string, value, min, max int) error {
	if value < min || value > max {
		return &ComponentRangeError{
			Name:  name,
			Min:   int64(min),
			Max:   int64(max),
			Value: int64(value),
		}
	}
	return nil
}
