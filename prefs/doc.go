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

// Package prefs facilitates the storage of preference values on disk.
//
// Each preference is one of the types Bool, Int, Float, Duration or String.
// A preference is registered with a Disk instance under a key:
//
//	var hz prefs.Int
//	dsk, _ := prefs.NewDisk(fn)
//	dsk.Add("driver.clockhz", &hz)
//	dsk.Load()
//
// The file is a flat YAML mapping of keys to values, preceded by a warning
// comment. Keys in the file that have not been registered with the Disk are
// kept and written back unchanged when the Disk is saved, so that several
// Disk instances can share the same file.
//
// A missing file is not an error. The preferences keep their current values.
//
// Preferences can also be set for the duration of the program with the
// command line stack. The stack is a list of key::value pairs separated by
// semicolons:
//
//	prefs.PushCommandLineStack("driver.clockhz::3000000; throttle.interval::20ms")
//
// Values on the top of the stack are applied (and consumed) by Disk.Load(),
// after the values from the file.
package prefs
