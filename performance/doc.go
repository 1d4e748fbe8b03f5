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

// Package performance contains the benchmark run loop and helper functions
// relating to performance.
//
// Benchmark() runs the stepping engine as fast as possible until a fixed
// number of cycles have been executed. The number of cycles is the nominal
// duration multiplied by the emulated clock rate, so the benchmark measures
// how long it takes to execute a known amount of emulated time. There is no
// pacing, no presentation and no input.
//
// Check() is a quick way of running the benchmark and writing the results to
// an io.Writer. It will optionally generate profiling information.
//
// RunProfiler() can be used to generate the various profile types. On it's own
// it will not limit the amount of time the program runs for so it is useful
// for more real-world situations. For example, the interactive loop can be
// run through the profiler.
package performance
