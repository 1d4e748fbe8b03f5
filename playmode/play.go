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

package playmode

import (
	"time"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/emulation"
	"github.com/hasseldorf/hasselemu/hassel"
	"github.com/hasseldorf/hasselemu/limiter"
	"github.com/hasseldorf/hasselemu/logger"
	"github.com/hasseldorf/hasselemu/userinput"
)

// PresentError is returned by Play() when the display surface fails to
// present a frame.
const PresentError = "playmode: present: %v"

// Config for the interactive loop. Zero values are replaced by the defaults
// in the hassel package.
type Config struct {
	// the emulated clock rate
	ClockHz int64

	// the minimum time between frame presentations
	FrameInterval time.Duration

	// how the pacer waits
	Pacing limiter.Strategy

	// source of time for the throttle and the pacer. nil means
	// limiter.Monotonic
	Clock limiter.Clock
}

func (cfg Config) normalise() Config {
	if cfg.ClockHz <= 0 {
		cfg.ClockHz = hassel.ClockHz
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = hassel.FrameInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = limiter.Monotonic
	}
	return cfg
}

// Play resets the engine and runs it in real time until the surface closes.
//
// Frames are taken from the FrameSource and presented to the surface. Key
// changes are sent to the InputSink.
func Play(cfg Config, engine emulation.Engine, surface emulation.Surface, sink emulation.InputSink, frames emulation.FrameSource) error {
	cfg = cfg.normalise()

	logger.Logf(logger.Allow, "playmode", "clock %dHz, frame interval %v, %s pacing", cfg.ClockHz, cfg.FrameInterval, cfg.Pacing)

	engine.Reset()

	thr := limiter.NewThrottle(cfg.FrameInterval, cfg.Clock)
	pcr := limiter.NewPacer(cfg.ClockHz, cfg.Clock, cfg.Pacing)
	det := userinput.NewDetector()

	var measured float32

	for surface.IsOpen() {
		if thr.Ready() {
			err := surface.Present(frames.FrameBuffer())
			if err != nil {
				return curated.Errorf(PresentError, err)
			}

			if m := thr.Measured(); m != measured {
				measured = m
				logger.Logf(logger.Allow, "playmode", "%.1f fps", measured)
			}
		}

		// no poll this tick means no change to the held keys
		if keys, ok := surface.PollHeldKeys(); ok {
			det.Update(keys, sink)
		}

		pcr.Pace(engine.Step())
	}

	logger.Log(logger.Allow, "playmode", "surface closed")

	return nil
}
