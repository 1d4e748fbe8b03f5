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

// Package termwindow is a display surface for text terminals. It implements
// the emulation.Surface interface.
//
// The terminal is put into raw mode with non-blocking reads. Terminals do not
// report key releases so every key read since the previous poll is taken to
// be held down for exactly one poll. Keys that need a modifier (capital
// letters and shifted punctuation for example) are reported along with the
// shift key. Control characters are reported along with the control key.
//
// Ctrl-C and Ctrl-Q close the surface.
//
// Frames are drawn as a map of luminance characters, scaled to fit the size
// of the terminal.
package termwindow
