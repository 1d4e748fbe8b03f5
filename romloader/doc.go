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

// Package romloader is used to specify and load the ROM for the emulated
// machine.
//
// A ROM can be loaded from a local file or from an http:// or https:// URL.
// The data must be exactly hassel.RequiredROMSize bytes long. Loading a ROM
// of any other size is an error.
//
// The SHA1 hash of the data is recorded after a successful load. If the Hash
// field is set before loading then the loaded data must match it.
package romloader
