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

package sdlwindow

import (
	"encoding/binary"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hasseldorf/hasselemu/emulation"
	"github.com/hasseldorf/hasselemu/hassel"
	"github.com/hasseldorf/hasselemu/test"
)

func TestHeldKeys(t *testing.T) {
	state := make([]uint8, sdl.NUM_SCANCODES)
	test.ExpectEquality(t, len(heldKeys(nil, state)), 0)

	state[sdl.SCANCODE_A] = 1
	state[sdl.SCANCODE_KP_ENTER] = 1

	// no emulated equivalent
	state[sdl.SCANCODE_MUTE] = 1

	keys := heldKeys(nil, state)
	test.ExpectEquality(t, len(keys), 2)

	// keys are in scancode order
	test.ExpectEquality(t, keys[0], hassel.KeyA)
	test.ExpectEquality(t, keys[1], hassel.KeyNumPadEnter)
}

func TestScancodesUnique(t *testing.T) {
	seen := make(map[hassel.Key]bool)
	for sc, k := range scancodes {
		test.ExpectSuccess(t, k.Valid(), sc)
		test.ExpectInequality(t, k, hassel.KeyUnknown, sc)
		test.ExpectFailure(t, seen[k], k)
		seen[k] = true
	}
}

func TestCopyFrame(t *testing.T) {
	fb := make(emulation.FrameBuffer, hassel.ScreenWidth*hassel.ScreenHeight)
	fb[0] = 0x00112233
	fb[hassel.ScreenWidth] = 0x00445566

	// rows of the texture padded by two pixels
	pitch := (hassel.ScreenWidth + 2) * pixelDepth
	pixels := make([]byte, pitch*hassel.ScreenHeight)
	copyFrame(pixels, pitch, fb)

	test.ExpectEquality(t, binary.LittleEndian.Uint32(pixels[0:]), uint32(0xff112233))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(pixels[pitch:]), uint32(0xff445566))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(pixels[4:]), uint32(0xff000000))
}
