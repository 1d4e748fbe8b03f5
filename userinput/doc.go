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

// Package userinput converts polled keyboard state into key events.
//
// Display surfaces report the keys that are held down at the moment of the
// poll. The emulated input device expects to be told when a key goes down and
// when it comes up. The Detector type sits between the two: each new
// snapshot is compared against the previous one and the differences are sent
// to an emulation.InputSink.
//
// On the first update after creation (or after Reset()) the previous snapshot
// is empty, so every held key is reported as newly down. This matches the
// state of a freshly reset machine.
package userinput
