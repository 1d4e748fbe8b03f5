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

package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hasseldorf/hasselemu/test"
)

func TestPaths(t *testing.T) {
	// run in an empty directory with the base resource path present
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Mkdir(baseResourcePath, 0o700))

	test.ExpectEquality(t, ResourcePath("foo/bar", "baz"), filepath.Join(".hasselemu", "foo", "bar", "baz"))
	test.ExpectEquality(t, ResourcePath("foo/bar", ""), filepath.Join(".hasselemu", "foo", "bar"))
	test.ExpectEquality(t, ResourcePath("", "baz"), filepath.Join(".hasselemu", "baz"))
	test.ExpectEquality(t, ResourcePath("", ""), ".hasselemu")
}

func TestUserConfigDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cnf, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config directory")
	}
	test.ExpectEquality(t, ResourcePath("preferences.yaml"), filepath.Join(cnf, "hasselemu", "preferences.yaml"))
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("bench", "hello", n), "bench_hello_20240309_140507")
	test.ExpectEquality(t, uniqueFilename("bench", "  ", n), "bench_20240309_140507")
}
