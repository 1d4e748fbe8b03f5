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
	"fmt"
	"io"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/emulation"
	"github.com/hasseldorf/hasselemu/logger"
)

// CheckError is returned by Check() if the benchmark or the profiler fails.
const CheckError = "performance: %v"

// Check the performance of the engine. The benchmark is run through the
// profiler if requested and the results are written to output.
func Check(output io.Writer, engine emulation.Engine, cfg Config, profile Profile) error {
	var r Results

	cfg = cfg.normalise()

	logger.Logf(logger.Allow, "performance", "benchmark target is %d cycles", cfg.Target())

	err := RunProfiler(profile, cfg.ProfileHeader, func() error {
		r = Benchmark(engine, cfg)
		return nil
	})
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	logger.Logf(logger.Allow, "performance", "%d steps", r.Steps)

	_, err = io.WriteString(output, r.String())
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	return nil
}

// String returns the results in a single line, ending with a newline.
func (r Results) String() string {
	return fmt.Sprintf("Took %.3f seconds to execute %d cycles (about %.2f times real time, or %.2f MHz)\n",
		r.Elapsed.Seconds(), r.Cycles, r.Ratio(), r.MHz())
}
