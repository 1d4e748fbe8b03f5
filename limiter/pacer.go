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

import (
	"strings"
	"time"

	"github.com/hasseldorf/hasselemu/curated"
)

// Strategy selects how the Pacer waits for the cycle budget to elapse.
type Strategy int

// List of valid Strategy values.
const (
	// Spin polls the clock in a tight loop. Accurate to the resolution of
	// the clock at the cost of occupying a CPU core.
	Spin Strategy = iota

	// Hybrid sleeps while more than HybridMargin of the budget remains and
	// then spins for what is left.
	Hybrid
)

// HybridMargin is the amount of budget the Hybrid strategy always spins for.
// Sleeping for less than this is too inaccurate on most platforms.
const HybridMargin = 2 * time.Millisecond

func (s Strategy) String() string {
	switch s {
	case Spin:
		return "SPIN"
	case Hybrid:
		return "HYBRID"
	}
	return "unknown strategy"
}

// UnknownStrategy is returned by ParseStrategy().
const UnknownStrategy = "limiter: unrecognised pacing strategy (%s)"

// ParseStrategy converts a string to a Strategy value. An empty string is
// the Spin strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "SPIN":
		return Spin, nil
	case "HYBRID":
		return Hybrid, nil
	}
	return Spin, curated.Errorf(UnknownStrategy, s)
}

// Pacer blocks the emulation loop so that the emulated cycles run no faster
// than the target clock rate.
type Pacer struct {
	clk      Clock
	hz       int64
	strategy Strategy

	// time of the most recent pacing checkpoint
	last time.Time

	// used by the Hybrid strategy
	sleep func(time.Duration)
}

// NewPacer is the preferred method of initialisation for the Pacer type. The
// hz value is the emulated clock rate. A nil clock means the Monotonic clock.
func NewPacer(hz int64, clk Clock, strategy Strategy) *Pacer {
	if clk == nil {
		clk = Monotonic
	}
	if hz <= 0 {
		panic("limiter: clock rate must be positive")
	}
	pcr := &Pacer{
		clk:      clk,
		hz:       hz,
		strategy: strategy,
		sleep:    time.Sleep,
	}
	pcr.Reset()
	return pcr
}

// Reset the pacing checkpoint to the current time.
func (pcr *Pacer) Reset() {
	pcr.last = pcr.clk.Now()
}

// Strategy returns the wait strategy of the pacer.
func (pcr *Pacer) Strategy() Strategy {
	return pcr.strategy
}

// Budget returns the wall-clock time required by the number of cycles at the
// target clock rate. Budgets of zero or fewer cycles are zero.
func (pcr *Pacer) Budget(cycles int) time.Duration {
	if cycles <= 0 {
		return 0
	}

	// whole seconds and the remainder are calculated separately so that the
	// multiplication by 1e9 can not overflow
	c := int64(cycles)
	secs := c / pcr.hz
	rem := c % pcr.hz
	return time.Duration(secs)*time.Second + time.Duration(rem*int64(time.Second)/pcr.hz)
}

// Pace blocks until the budget for the number of cycles has elapsed since the
// previous checkpoint. The checkpoint is then moved to the current time.
//
// A budget of zero returns immediately. The checkpoint is still moved.
func (pcr *Pacer) Pace(cycles int) {
	budget := pcr.Budget(cycles)
	if budget == 0 {
		pcr.last = pcr.clk.Now()
		return
	}

	deadline := pcr.last.Add(budget)

	if pcr.strategy == Hybrid {
		for {
			remaining := deadline.Sub(pcr.clk.Now())
			if remaining <= HybridMargin {
				break
			}
			pcr.sleep(remaining - HybridMargin)
		}
	}

	now := pcr.clk.Now()
	for now.Before(deadline) {
		now = pcr.clk.Now()
	}

	pcr.last = now
}
