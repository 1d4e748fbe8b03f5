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

// Package playmode runs the emulation interactively.
//
// Each iteration of the loop in Play() does four things in order: present a
// frame if the Throttle allows it, poll for held keys and send any changes to
// the input device, step the engine once and finally pace the loop according
// to the number of cycles the step consumed.
//
// The loop ends when the display surface reports that it is no longer open.
// A failure to present a frame ends the loop immediately with an error.
package playmode
