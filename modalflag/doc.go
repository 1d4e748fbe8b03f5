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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas flag.FlagSet.Parse() takes the arguments directly, with modalflag
// the arguments are first given to NewArgs() and then Parse() is called with
// no arguments. This allows the same argument list to be parsed in stages, one
// stage per mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "BENCH")
//	p, err := md.Parse()
//
// The first sub-mode is the default. After Parse() the Mode() function
// returns the selected mode and the next stage can begin:
//
//	switch md.Mode() {
//	case "BENCH":
//		md.NewMode()
//		duration := md.AddDuration("duration", 20*time.Second, "nominal emulated time")
//		p, err := md.Parse()
//		...
//	}
//
// Sub-mode comparisons are case insensitive. Help messages for the current
// stage are printed to the Output field when the -help flag is given, in which
// case Parse() returns ParseHelp.
//
// In addition to the types supported by the flag package, AddChoice() adds a
// string flag that only accepts one of a fixed list of values.
package modalflag
