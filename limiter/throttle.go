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

// how often the presentation rate is re-measured
const measurementPeriod = time.Second

// Throttle limits how often frames are presented to the display surface.
type Throttle struct {
	clk      Clock
	interval time.Duration

	// time of the most recent presentation. only changed when Ready() returns
	// true
	last time.Time

	// the measured rate is the number of presentations divided by the elapsed
	// time since the previous measurement
	measureTime time.Time
	measureCt   int
	measured    float32
}

// NewThrottle is the preferred method of initialisation for the Throttle type.
// The interval should be the minimum time between two presentations. A nil
// clock means the Monotonic clock.
func NewThrottle(interval time.Duration, clk Clock) *Throttle {
	if clk == nil {
		clk = Monotonic
	}
	thr := &Throttle{
		clk:      clk,
		interval: interval,
	}
	thr.Reset()
	return thr
}

// Reset the presentation mark to the current time. Measurement is also
// restarted.
func (thr *Throttle) Reset() {
	now := thr.clk.Now()
	thr.last = now
	thr.measureTime = now
	thr.measureCt = 0
	thr.measured = 0
}

// Interval returns the minimum time between presentations.
func (thr *Throttle) Interval() time.Duration {
	return thr.interval
}

// Ready returns true if more than the interval has elapsed since the last
// presentation. A true result is taken to mean that a frame will be presented
// immediately and the presentation mark is moved to the current time. A false
// result leaves the mark where it is.
func (thr *Throttle) Ready() bool {
	now := thr.clk.Now()
	if now.Sub(thr.last) <= thr.interval {
		return false
	}

	thr.last = now
	thr.measureCt++

	if d := now.Sub(thr.measureTime); d >= measurementPeriod {
		thr.measured = float32(float64(thr.measureCt) / d.Seconds())
		thr.measureTime = now
		thr.measureCt = 0
	}

	return true
}

// Measured returns the presentation rate in frames per second. The value is
// updated about once a second and is zero until the first measurement.
func (thr *Throttle) Measured() float32 {
	return thr.measured
}
