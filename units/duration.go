/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package units

import (
	"math"
	"time"

	"dirpx.dev/qtty"
)

// FromDuration converts a time.Duration into seconds.
func FromDuration(d time.Duration) Seconds {
	return qtty.New[Second](d.Seconds())
}

// ToDuration converts a time quantity into a time.Duration, rounded to the
// nearest nanosecond. Values beyond the Duration range saturate; NaN maps
// to 0.
func ToDuration[U qtty.Unit[Time]](q qtty.Quantity[U, Time]) time.Duration {
	ns := math.Round(qtty.To[Second](q).Value() * float64(time.Second))
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}
