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

package termwindow

import (
	"bytes"

	"github.com/hasseldorf/hasselemu/emulation"
	"github.com/hasseldorf/hasselemu/hassel"
)

// characters of increasing luminance
const ramp = " .:-=+*#%@"

// luminance of a 0x00RRGGBB pixel in the range 0 to 255
func luminance(rgb uint32) int {
	r := int(rgb>>16) & 0xff
	g := int(rgb>>8) & 0xff
	b := int(rgb) & 0xff
	return (299*r + 587*g + 114*b) / 1000
}

// render the frame buffer into buf as cols by rows characters. each character
// is the luminance of the pixel at the centre of the area it covers
func render(buf *bytes.Buffer, fb emulation.FrameBuffer, cols int, rows int) {
	buf.Reset()

	// cursor home
	buf.WriteString("\x1b[H")

	if cols <= 0 || rows <= 0 {
		return
	}

	for y := 0; y < rows; y++ {
		sy := (y*hassel.ScreenHeight + hassel.ScreenHeight/2) / rows
		for x := 0; x < cols; x++ {
			sx := (x*hassel.ScreenWidth + hassel.ScreenWidth/2) / cols
			l := luminance(fb[sy*hassel.ScreenWidth+sx])
			buf.WriteByte(ramp[l*(len(ramp)-1)/255])
		}
		if y < rows-1 {
			buf.WriteString("\r\n")
		}
	}
}
