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

// GraphicsDevice holds the frame buffer of the Hasseldorf computer. The
// buffer is allocated once and refreshed in place. It implements the
// emulation.FrameSource interface.
type GraphicsDevice struct {
	pixels []uint32
}

// NewGraphicsDevice is the preferred method of initialisation for the
// GraphicsDevice type.
func NewGraphicsDevice() *GraphicsDevice {
	return &GraphicsDevice{
		pixels: make([]uint32, ScreenWidth*ScreenHeight),
	}
}

// FrameBuffer implements the emulation.FrameSource interface. Each entry is a
// packed 0x00RRGGBB value.
func (gfx *GraphicsDevice) FrameBuffer() []uint32 {
	return gfx.pixels
}

// SetPixel sets the colour of a single pixel. Coordinates outside of the
// screen are ignored.
func (gfx *GraphicsDevice) SetPixel(x, y int, rgb uint32) {
	if x < 0 || y < 0 || x >= ScreenWidth || y >= ScreenHeight {
		return
	}
	gfx.pixels[y*ScreenWidth+x] = rgb & 0x00ffffff
}

// Clear sets every pixel to black.
func (gfx *GraphicsDevice) Clear() {
	clear(gfx.pixels)
}
