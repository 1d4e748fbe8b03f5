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

// size in pixels of the indicator drawn for each held key
const indicatorSize = 4

// IdleEngine is a stepping engine that executes no instructions. Every step
// draws one scanline of a pattern taken from the ROM data and consumes one
// scanline's worth of cycles. Keys held on the IODevice are drawn as a row of
// indicators along the bottom of the screen.
type IdleEngine struct {
	rom []byte
	io  *IODevice
	gfx *GraphicsDevice

	scanline int
	frame    int

	// number of key events consumed from the IODevice
	Consumed int
}

// NewIdleEngine is the preferred method of initialisation for the IdleEngine
// type.
func NewIdleEngine(rom []byte, io *IODevice, gfx *GraphicsDevice) *IdleEngine {
	return &IdleEngine{
		rom: rom,
		io:  io,
		gfx: gfx,
	}
}

// Reset implements the emulation.Engine interface.
func (eng *IdleEngine) Reset() {
	eng.scanline = 0
	eng.frame = 0
	eng.Consumed = 0
	eng.gfx.Clear()
}

// Step implements the emulation.Engine interface.
func (eng *IdleEngine) Step() int {
	for {
		if _, ok := eng.io.Next(); !ok {
			break
		}
		eng.Consumed++
	}

	y := eng.scanline
	for x := range ScreenWidth {
		var v byte
		if len(eng.rom) > 0 {
			v = eng.rom[(y*ScreenWidth+x+eng.frame)%len(eng.rom)]
		}
		eng.gfx.SetPixel(x, y, uint32(v)<<16|uint32(v)<<8|uint32(v))
	}

	// key indicators occupy the bottom rows of the screen
	if y >= ScreenHeight-indicatorSize {
		for k := KeyUnknown + 1; k < numKeys; k++ {
			if !eng.io.Held(k) {
				continue
			}
			x := int(k-1) * indicatorSize
			for i := range indicatorSize - 1 {
				eng.gfx.SetPixel(x+i, y, 0x00ffcc00)
			}
		}
	}

	eng.scanline++
	if eng.scanline >= ScreenHeight {
		eng.scanline = 0
		eng.frame++
	}

	return CyclesPerScanline
}

// Frame returns the number of frames completed since the last Reset().
func (eng *IdleEngine) Frame() int {
	return eng.frame
}

// System is the assembled Hasseldorf machine.
type System struct {
	IO       *IODevice
	Graphics *GraphicsDevice
	Engine   *IdleEngine
}

// NewSystem creates the devices and the engine for the ROM data.
func NewSystem(rom []byte) *System {
	sys := &System{
		IO:       NewIODevice(),
		Graphics: NewGraphicsDevice(),
	}
	sys.Engine = NewIdleEngine(rom, sys.IO, sys.Graphics)
	return sys
}
