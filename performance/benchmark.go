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

package performance

import (
	"time"

	"github.com/hasseldorf/hasselemu/emulation"
	"github.com/hasseldorf/hasselemu/hassel"
	"github.com/hasseldorf/hasselemu/limiter"
)

// Config for the benchmark. Zero values are replaced by the defaults in the
// hassel package.
type Config struct {
	// the emulated clock rate
	ClockHz int64

	// the amount of emulated time to run for
	Nominal time.Duration

	// the clock used to measure the elapsed time. nil means limiter.Monotonic
	Clock limiter.Clock

	// the start of the filename for any profiling reports. an empty string
	// means "performance"
	ProfileHeader string
}

func (cfg Config) normalise() Config {
	if cfg.ClockHz <= 0 {
		cfg.ClockHz = hassel.ClockHz
	}
	if cfg.Nominal <= 0 {
		cfg.Nominal = hassel.BenchDuration
	}
	if cfg.Clock == nil {
		cfg.Clock = limiter.Monotonic
	}
	if cfg.ProfileHeader == "" {
		cfg.ProfileHeader = "performance"
	}
	return cfg
}

// Target returns the number of cycles the benchmark will execute, at least.
func (cfg Config) Target() int64 {
	cfg = cfg.normalise()
	secs := int64(cfg.Nominal / time.Second)
	frac := int64(cfg.Nominal % time.Second)
	return secs*cfg.ClockHz + frac*cfg.ClockHz/int64(time.Second)
}

// Results of a benchmark.
type Results struct {
	// the requested amount of emulated time and the equivalent number of
	// cycles
	Nominal time.Duration
	Target  int64

	// the number of cycles actually executed. because the engine decides how
	// many cycles are executed by each step this is likely to be more than
	// the target
	Cycles int64

	// the number of calls to Step()
	Steps int

	// the measured wall-clock time
	Elapsed time.Duration
}

// Ratio returns the nominal duration divided by the measured duration. A
// value of more than one means the engine runs faster than real time.
func (r Results) Ratio() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return r.Nominal.Seconds() / r.Elapsed.Seconds()
}

// Hz returns the number of cycles executed per second of wall-clock time.
func (r Results) Hz() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Cycles) / r.Elapsed.Seconds()
}

// MHz is the same as Hz() but in megahertz.
func (r Results) MHz() float64 {
	return r.Hz() / 1_000_000
}

// Benchmark resets the engine and then steps it until the number of cycles
// executed meets or exceeds the target.
func Benchmark(engine emulation.Engine, cfg Config) Results {
	cfg = cfg.normalise()

	r := Results{
		Nominal: cfg.Nominal,
		Target:  cfg.Target(),
	}

	engine.Reset()

	start := cfg.Clock.Now()
	for r.Cycles < r.Target {
		r.Cycles += int64(engine.Step())
		r.Steps++
	}
	r.Elapsed = cfg.Clock.Now().Sub(start)

	return r
}
