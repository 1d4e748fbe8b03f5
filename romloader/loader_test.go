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

package romloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/hassel"
	"github.com/hasseldorf/hasselemu/romloader"
	"github.com/hasseldorf/hasselemu/test"
)

func rom(size int) []byte {
	d := make([]byte, size)
	for i := range d {
		d[i] = byte(i)
	}
	return d
}

func writeROM(t *testing.T, size int) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.rom")
	err := os.WriteFile(fn, rom(size), 0o600)
	test.DemandSuccess(t, err)
	return fn
}

func TestLoadFile(t *testing.T) {
	fn := writeROM(t, hassel.RequiredROMSize)
	rl := romloader.NewLoader(fn)
	test.ExpectFailure(t, rl.HasLoaded())

	d, err := rl.Load()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(d), hassel.RequiredROMSize)
	test.ExpectSuccess(t, rl.HasLoaded())
	test.ExpectEquality(t, rl.Hash, fmt.Sprintf("%x", sha1.Sum(rom(hassel.RequiredROMSize))))
	test.ExpectEquality(t, rl.ShortName(), "test")
}

func TestWrongSize(t *testing.T) {
	for _, size := range []int{0, 100, hassel.RequiredROMSize - 1, hassel.RequiredROMSize + 1} {
		rl := romloader.NewLoader(writeROM(t, size))
		_, err := rl.Load()
		test.ExpectSuccess(t, curated.Is(err, romloader.WrongSize), size)
		test.ExpectFailure(t, rl.HasLoaded(), size)
	}

	rl := romloader.NewLoader(writeROM(t, 100))
	_, err := rl.Load()
	test.ExpectEquality(t, err.Error(), "romloader: ROM has unexpected size (100); should be 8192 bytes")
}

func TestMissingFile(t *testing.T) {
	rl := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.rom"))
	_, err := rl.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.CannotLoad))
	test.ExpectSuccess(t, os.IsNotExist(unwrap(err)))
}

func unwrap(err error) error {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		if e := u.Unwrap(); len(e) > 0 {
			return e[0]
		}
	}
	return err
}

func TestHash(t *testing.T) {
	rl := romloader.NewLoader(writeROM(t, hassel.RequiredROMSize))
	rl.Hash = "0000"
	_, err := rl.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.HashMismatch))

	rl.Hash = fmt.Sprintf("%x", sha1.Sum(rom(hassel.RequiredROMSize)))
	_, err = rl.Load()
	test.ExpectSuccess(t, err)
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/good.rom":
			w.Write(rom(hassel.RequiredROMSize))
		case "/big.rom":
			w.Write(rom(hassel.RequiredROMSize * 2))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	rl := romloader.NewLoader(srv.URL + "/good.rom")
	d, err := rl.Load()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(d), hassel.RequiredROMSize)
	test.ExpectEquality(t, rl.ShortName(), "good")

	rl = romloader.NewLoader(srv.URL + "/big.rom")
	_, err = rl.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.WrongSize))

	rl = romloader.NewLoader(srv.URL + "/missing.rom")
	_, err = rl.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.CannotLoad))
}
