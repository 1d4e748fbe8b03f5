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

// Package hassel describes the Hasseldorf computer as seen by the real-time
// driver: the fixed machine constants, the logical keyboard, the input
// device that receives key events and the graphics device that holds the
// frame buffer.
//
// The instruction level core of the machine is not part of this package.
// The IdleEngine type is a stand-in stepping engine that consumes cycles at
// a steady rate and draws a pattern derived from the ROM. It allows the
// driver to be run and measured without the real core.
package hassel
