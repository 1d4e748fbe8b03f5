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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. The first argument
// is a pattern and the remaining arguments are the values for the pattern.
// The pattern identifies the error, so packages export the patterns they use
// as constant strings. For example, the romloader package declares:
//
//	const WrongSize = "romloader: ROM has unexpected size (%d); should be %d bytes"
//
// and callers can then check for that specific failure:
//
//	if curated.Is(err, romloader.WrongSize) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the chain of curated errors.
//
// The Error() implementation normalises the chain so that adjacent duplicate
// parts are removed. A chain is made of parts separated by the sub-string
// ": ". This means that a function can wrap an error without worrying about
// whether the callee has already added the same context:
//
//	return curated.Errorf("playmode: %v", err)
//
// will not produce "playmode: playmode: ..." if err already begins with
// "playmode".
//
// Curated errors also implement Unwrap() for any value that is an error. The
// errors.Is() and errors.As() functions from the standard library therefore
// work as expected with the causes of a curated error.
package curated
