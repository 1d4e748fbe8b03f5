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

package hassel

import "time"

// ClockHz is the frequency of the emulated clock.
const ClockHz = 6_000_000

// FrameInterval is the minimum wall-clock time between two frame
// presentations. The value (75Hz) is chosen to be faster than typical display
// refresh rates so that presentation is never the bottleneck.
const FrameInterval = time.Second / 75

// BenchDuration is the nominal amount of emulated time run by the benchmark.
// The benchmark workload is BenchDuration worth of cycles at ClockHz.
const BenchDuration = 20 * time.Second

// RequiredROMSize is the exact size in bytes of a valid ROM.
const RequiredROMSize = 8192

// Dimensions of the frame buffer in pixels.
const (
	ScreenWidth  = 480
	ScreenHeight = 270
)

// FieldRate is the number of frames per second drawn by the graphics device.
const FieldRate = 60

// CyclesPerScanline is the number of emulated cycles in one scanline of the
// graphics device.
const CyclesPerScanline = ClockHz / (FieldRate * ScreenHeight)
