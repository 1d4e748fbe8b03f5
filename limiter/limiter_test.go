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

package limiter_test

import (
	"testing"
	"time"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/hassel"
	"github.com/hasseldorf/hasselemu/limiter"
	"github.com/hasseldorf/hasselemu/test"
)

// fakeClock only moves when told to. if tick is non-zero then every call to
// Now() also advances the clock by that amount, which allows the spin loop of
// the pacer to make progress
type fakeClock struct {
	now   time.Time
	tick  time.Duration
	calls int
}

func newFakeClock(tick time.Duration) *fakeClock {
	return &fakeClock{
		now:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		tick: tick,
	}
}

func (clk *fakeClock) Now() time.Time {
	clk.calls++
	clk.now = clk.now.Add(clk.tick)
	return clk.now
}

func (clk *fakeClock) advance(d time.Duration) {
	clk.now = clk.now.Add(d)
}

func TestThrottleGaps(t *testing.T) {
	clk := newFakeClock(0)
	thr := limiter.NewThrottle(hassel.FrameInterval, clk)

	// the interval is about 13.3ms. gaps of 5ms only exceed it on the third
	clk.advance(5 * time.Millisecond)
	test.ExpectFailure(t, thr.Ready())
	clk.advance(5 * time.Millisecond)
	test.ExpectFailure(t, thr.Ready())
	clk.advance(5 * time.Millisecond)
	test.ExpectSuccess(t, thr.Ready())

	// the mark was reset by the presentation so the next check fails
	test.ExpectFailure(t, thr.Ready())
	clk.advance(5 * time.Millisecond)
	test.ExpectFailure(t, thr.Ready())
	clk.advance(5 * time.Millisecond)
	test.ExpectFailure(t, thr.Ready())
	clk.advance(5 * time.Millisecond)
	test.ExpectSuccess(t, thr.Ready())
}

func TestThrottleExactInterval(t *testing.T) {
	clk := newFakeClock(0)
	thr := limiter.NewThrottle(10*time.Millisecond, clk)

	// elapsed time must exceed the interval
	clk.advance(10 * time.Millisecond)
	test.ExpectFailure(t, thr.Ready())
	clk.advance(time.Nanosecond)
	test.ExpectSuccess(t, thr.Ready())
}

func TestThrottleSlowEngine(t *testing.T) {
	clk := newFakeClock(0)
	thr := limiter.NewThrottle(10*time.Millisecond, clk)

	// a long gap results in a single presentation. frames are not queued
	clk.advance(time.Second)
	test.ExpectSuccess(t, thr.Ready())
	test.ExpectFailure(t, thr.Ready())
}

func TestThrottleMeasured(t *testing.T) {
	clk := newFakeClock(0)
	thr := limiter.NewThrottle(10*time.Millisecond, clk)
	test.ExpectEquality(t, thr.Measured(), float32(0))

	// present every 20ms for a little over a second
	for range 51 {
		clk.advance(20 * time.Millisecond)
		thr.Ready()
	}
	test.ExpectApproximate(t, thr.Measured(), float32(50.0), 0.01)
}

func TestBudget(t *testing.T) {
	pcr := limiter.NewPacer(hassel.ClockHz, newFakeClock(0), limiter.Spin)
	test.ExpectEquality(t, pcr.Budget(0), time.Duration(0))
	test.ExpectEquality(t, pcr.Budget(-10), time.Duration(0))
	test.ExpectEquality(t, pcr.Budget(6), time.Microsecond)
	test.ExpectEquality(t, pcr.Budget(hassel.ClockHz), time.Second)
	test.ExpectEquality(t, pcr.Budget(1_000_000), 166_666_666*time.Nanosecond)

	// large cycle counts do not overflow
	test.ExpectEquality(t, pcr.Budget(hassel.ClockHz*3600), time.Hour)
}

func TestPaceZeroCycles(t *testing.T) {
	clk := newFakeClock(0)
	pcr := limiter.NewPacer(hassel.ClockHz, clk, limiter.Spin)

	// with a stopped clock any wait would never finish
	pcr.Pace(0)
	pcr.Pace(-1)
}

func TestPaceFakeClock(t *testing.T) {
	clk := newFakeClock(time.Microsecond)
	pcr := limiter.NewPacer(hassel.ClockHz, clk, limiter.Spin)

	start := clk.now
	pcr.Pace(6000)
	test.ExpectSuccess(t, clk.now.Sub(start) >= time.Millisecond)
	test.ExpectSuccess(t, clk.now.Sub(start) <= time.Millisecond+2*time.Microsecond)

	// time spent outside the pacer counts towards the next budget
	clk.advance(600 * time.Microsecond)
	mark := clk.now
	pcr.Pace(6000)
	test.ExpectSuccess(t, clk.now.Sub(mark) >= 400*time.Microsecond)
	test.ExpectSuccess(t, clk.now.Sub(mark) <= 402*time.Microsecond)

	// if the budget has already been used up the pacer does not wait
	clk.advance(5 * time.Millisecond)
	calls := clk.calls
	pcr.Pace(6000)
	test.ExpectEquality(t, clk.calls-calls, 1)
}

func TestPaceRealClock(t *testing.T) {
	if testing.Short() {
		t.Skip("real time pacing test")
	}

	for _, s := range []limiter.Strategy{limiter.Spin, limiter.Hybrid} {
		pcr := limiter.NewPacer(hassel.ClockHz, limiter.Monotonic, s)
		start := time.Now()
		pcr.Pace(1_000_000)
		elapsed := time.Since(start)
		test.ExpectSuccess(t, elapsed >= 166_666_666*time.Nanosecond, s)
		test.ExpectSuccess(t, elapsed < 200*time.Millisecond, s)
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := limiter.ParseStrategy("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, limiter.Spin)

	s, err = limiter.ParseStrategy("hybrid")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, limiter.Hybrid)
	test.ExpectEquality(t, s.String(), "HYBRID")

	_, err = limiter.ParseStrategy("nap")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, limiter.UnknownStrategy))
}
