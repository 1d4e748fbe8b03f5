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

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package termwindow

import (
	"os"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/emulation"
	"github.com/hasseldorf/hasselemu/hassel"
)

// SurfaceError is returned when the terminal can not be prepared or when a
// frame can not be presented.
const SurfaceError = "termwindow: %v"

// Terminal is not available on this platform.
type Terminal struct{}

// NewTerminal always fails on this platform.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	return nil, curated.Errorf(SurfaceError, "terminal surface not supported on this platform")
}

// Destroy does nothing on this platform.
func (term *Terminal) Destroy() {}

// IsOpen implements the emulation.Surface interface.
func (term *Terminal) IsOpen() bool {
	return false
}

// Present implements the emulation.Surface interface.
func (term *Terminal) Present(fb emulation.FrameBuffer) error {
	return curated.Errorf(SurfaceError, "terminal surface not supported on this platform")
}

// PollHeldKeys implements the emulation.Surface interface.
func (term *Terminal) PollHeldKeys() ([]hassel.Key, bool) {
	return nil, false
}
