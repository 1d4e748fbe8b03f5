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

// Package emulation defines the contracts between the real-time driver and
// its collaborators. The driver itself (the playmode and performance
// packages) only ever sees these interfaces.
//
// The stepping engine executes emulated instructions and reports how many
// cycles that took. It is never told how many cycles to run; whatever it
// reports is authoritative.
//
// The display surface is the window (or terminal) the emulation runs in. It
// reports whether it is still open, accepts frames for presentation and
// provides a non-blocking poll of the keys currently held down.
package emulation

import (
	"github.com/hasseldorf/hasselemu/hassel"
)

// Engine is the stepping engine.
type Engine interface {
	// Reset the engine. Called once before a run loop begins.
	Reset()

	// Step executes an implementation defined number of instructions and
	// returns the number of emulated cycles consumed.
	Step() int
}

// FrameBuffer is a read-only view of pixel data. The length is always
// hassel.ScreenWidth * hassel.ScreenHeight and each pixel is a packed
// 0x00RRGGBB value.
type FrameBuffer = []uint32

// FrameSource is implemented by whatever holds the engine's graphics state.
// The returned buffer is refreshed in place by the engine and should not be
// copied or modified by the caller.
type FrameSource interface {
	FrameBuffer() FrameBuffer
}

// Surface is the display surface that frames are presented to and from
// which user input is polled.
type Surface interface {
	// IsOpen returns false once the surface has been closed by the user or
	// by a fatal error. It is checked once per loop iteration.
	IsOpen() bool

	// Present the frame buffer. An error is fatal to the run loop.
	Present(fb FrameBuffer) error

	// PollHeldKeys returns the set of keys currently held down. The boolean
	// is false if no new poll is available, in which case the key slice
	// should be ignored. PollHeldKeys must not block.
	PollHeldKeys() ([]hassel.Key, bool)
}

// InputSink receives key edge events. Implementations must not block.
type InputSink interface {
	KeyDown(key hassel.Key)
	KeyUp(key hassel.Key)
}
