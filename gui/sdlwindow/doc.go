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

// Package sdlwindow is the SDL2 display surface. It implements the
// emulation.Surface interface.
//
// Frames are copied into a streaming texture of ScreenWidth by ScreenHeight
// pixels, which the renderer scales to the size of the window. The keyboard is
// read by sampling the SDL keyboard state, rather than by handling key events,
// because the emulation loop needs the set of held keys. Sampling happens no
// more often than PollInterval. Between samples PollHeldKeys() reports that no
// poll is available.
//
// SDL requires that the window is created and serviced from the main thread.
// The program should call runtime.LockOSThread() in an init() function of the
// main package.
package sdlwindow
