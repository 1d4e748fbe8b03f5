// This file is part of Hasselemu.
//
// Hasselemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hasselemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hasselemu.  If not, see <https://www.gnu.org/licenses/>.

package limiter

import "time"

// Clock is the source of time for the Throttle and Pacer types.
type Clock interface {
	Now() time.Time
}

type monotonic struct{}

func (monotonic) Now() time.Time {
	return time.Now()
}

// Monotonic is the system clock. Values returned by time.Now() carry a
// monotonic reading, so durations between them are not affected by changes to
// the wall clock.
var Monotonic Clock = monotonic{}
