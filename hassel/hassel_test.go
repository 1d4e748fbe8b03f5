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

package hassel_test

import (
	"testing"

	"github.com/hasseldorf/hasselemu/hassel"
	"github.com/hasseldorf/hasselemu/test"
)

func TestKeyNames(t *testing.T) {
	test.ExpectEquality(t, hassel.KeyA.String(), "A")
	test.ExpectEquality(t, hassel.Key0.String(), "0")
	test.ExpectEquality(t, hassel.KeyNumPadEnter.String(), "NumPadEnter")
	test.ExpectEquality(t, hassel.KeyUnknown.String(), "Unknown")
	test.ExpectEquality(t, hassel.KeyByName("F12"), hassel.KeyF12)
	test.ExpectEquality(t, hassel.KeyByName("not a key"), hassel.KeyUnknown)
	test.ExpectFailure(t, hassel.KeyUnknown.Valid())
	test.ExpectSuccess(t, hassel.KeyRightSuper.Valid())
	test.ExpectFailure(t, hassel.Key(-1).Valid())
}

func TestIODevice(t *testing.T) {
	dev := hassel.NewIODevice()

	dev.KeyDown(hassel.KeyA)
	dev.KeyDown(hassel.KeyB)
	dev.KeyUp(hassel.KeyA)

	test.ExpectFailure(t, dev.Held(hassel.KeyA))
	test.ExpectSuccess(t, dev.Held(hassel.KeyB))
	test.ExpectEquality(t, dev.Pending(), 3)

	ev, ok := dev.Next()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev, hassel.Event{Key: hassel.KeyA, Down: true})
	ev, _ = dev.Next()
	test.ExpectEquality(t, ev, hassel.Event{Key: hassel.KeyB, Down: true})
	ev, _ = dev.Next()
	test.ExpectEquality(t, ev, hassel.Event{Key: hassel.KeyA, Down: false})
	_, ok = dev.Next()
	test.ExpectFailure(t, ok)
}

func TestIODeviceOverflow(t *testing.T) {
	dev := hassel.NewIODevice()

	for range hassel.QueueLength {
		dev.KeyDown(hassel.KeyA)
	}
	dev.KeyDown(hassel.KeyZ)
	test.ExpectEquality(t, dev.Pending(), hassel.QueueLength)

	// the oldest event has been discarded so the last event must be the
	// most recent
	var ev hassel.Event
	for {
		e, ok := dev.Next()
		if !ok {
			break
		}
		ev = e
	}
	test.ExpectEquality(t, ev.Key, hassel.KeyZ)
}

func TestIdleEngine(t *testing.T) {
	rom := make([]byte, hassel.RequiredROMSize)
	for i := range rom {
		rom[i] = byte(i)
	}

	sys := hassel.NewSystem(rom)
	sys.Engine.Reset()

	sys.IO.KeyDown(hassel.KeyA)

	cycles := 0
	for range hassel.ScreenHeight {
		cycles += sys.Engine.Step()
	}

	test.ExpectEquality(t, cycles, hassel.ScreenHeight*hassel.CyclesPerScanline)
	test.ExpectEquality(t, sys.Engine.Frame(), 1)
	test.ExpectEquality(t, sys.Engine.Consumed, 1)
	test.ExpectEquality(t, len(sys.Graphics.FrameBuffer()), hassel.ScreenWidth*hassel.ScreenHeight)

	// second pixel of first scanline is drawn from the second byte of the rom
	test.ExpectEquality(t, sys.Graphics.FrameBuffer()[1], uint32(0x00010101))
}
