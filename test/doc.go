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

// Package test contains helper functions to remove common boilerplate in
// the tests of the other packages.
//
// The Expect*() functions report a failure with t.Errorf() and let the test
// continue. The Demand*() functions report with t.Fatalf() and should be
// used when later parts of the test depend on the value being correct. For
// example, checking the length of slices before iterating over them in
// unison.
//
// Success and failure depend on the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case follows how errors are used in Go. An untyped nil is most
// likely an error value that has been returned as nil.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output for later comparison.
package test
