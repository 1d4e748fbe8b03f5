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

package performance_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/performance"
	"github.com/hasseldorf/hasselemu/test"
)

// stubEngine always executes the same number of cycles
type stubEngine struct {
	cycles int
	steps  int
	resets int
}

func (eng *stubEngine) Reset() {
	eng.resets++
	eng.steps = 0
}

func (eng *stubEngine) Step() int {
	eng.steps++
	return eng.cycles
}

// secondClock advances by one second on every call to Now()
type secondClock struct {
	now time.Time
}

func (clk *secondClock) Now() time.Time {
	clk.now = clk.now.Add(time.Second)
	return clk.now
}

func TestTarget(t *testing.T) {
	cfg := performance.Config{}
	test.ExpectEquality(t, cfg.Target(), int64(120_000_000))

	cfg = performance.Config{ClockHz: 1000, Nominal: 1500 * time.Millisecond}
	test.ExpectEquality(t, cfg.Target(), int64(1500))
}

func TestBenchmarkExactTarget(t *testing.T) {
	eng := &stubEngine{cycles: 1000}
	cfg := performance.Config{ClockHz: 1000, Nominal: 10 * time.Second}

	r := performance.Benchmark(eng, cfg)
	test.ExpectEquality(t, eng.resets, 1)
	test.ExpectEquality(t, eng.steps, 10)
	test.ExpectEquality(t, r.Steps, 10)
	test.ExpectEquality(t, r.Target, int64(10_000))
	test.ExpectEquality(t, r.Cycles, int64(10_000))
}

func TestBenchmarkOvershoot(t *testing.T) {
	eng := &stubEngine{cycles: 3000}
	cfg := performance.Config{ClockHz: 1000, Nominal: 10 * time.Second}

	r := performance.Benchmark(eng, cfg)
	test.ExpectEquality(t, r.Steps, 4)
	test.ExpectEquality(t, r.Cycles, int64(12_000))
	test.ExpectSuccess(t, r.Cycles >= r.Target)
}

func TestResults(t *testing.T) {
	eng := &stubEngine{cycles: 1000}
	cfg := performance.Config{ClockHz: 1000, Nominal: 10 * time.Second, Clock: &secondClock{}}

	r := performance.Benchmark(eng, cfg)
	test.ExpectEquality(t, r.Elapsed, time.Second)
	test.ExpectApproximate(t, r.Ratio(), 10.0, 0.0001)
	test.ExpectApproximate(t, r.Hz(), 10_000.0, 0.0001)

	// no elapsed time
	var z performance.Results
	test.ExpectEquality(t, z.Ratio(), 0.0)
	test.ExpectEquality(t, z.Hz(), 0.0)
}

func TestCheck(t *testing.T) {
	eng := &stubEngine{cycles: 1000}
	cfg := performance.Config{ClockHz: 1000, Nominal: 10 * time.Second, Clock: &secondClock{}}

	w := &test.Writer{}
	err := performance.Check(w, eng, cfg, performance.ProfileNone)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Compare("Took 1.000 seconds to execute 10000 cycles (about 10.00 times real time, or 0.01 MHz)\n"))
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "ALL")

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfiler(t *testing.T) {
	err := performance.RunProfiler(performance.ProfileNone, "unused", func() error {
		return io.ErrUnexpectedEOF
	})
	test.ExpectEquality(t, err, io.ErrUnexpectedEOF)

	header := filepath.Join(t.TempDir(), "test")
	ran := false
	err = performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, header, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(header + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_trace.profile")
	test.ExpectFailure(t, err)
}
