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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/prefs"
	"github.com/hasseldorf/hasselemu/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "preferences.yaml")
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		t.Logf("expected:\n%s", expected)
		t.Logf("in file:\n%s", string(data))
	}
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test: true\ntestB: false\ntestC: true\n")
}

func TestNumbers(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var hz prefs.Int
	var scale prefs.Float
	test.ExpectSuccess(t, dsk.Add("driver.clockhz", &hz))
	test.ExpectSuccess(t, dsk.Add("sdl.scale", &scale))

	test.ExpectSuccess(t, hz.Set("6000000"))
	test.ExpectSuccess(t, scale.Set(1.5))
	test.ExpectFailure(t, hz.Set("---"))
	test.ExpectFailure(t, hz.Set(1.0))
	test.ExpectFailure(t, scale.Set("abc"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "driver.clockhz: 6000000\nsdl.scale: 1.5\n")

	test.ExpectSuccess(t, hz.Reset())
	test.ExpectSuccess(t, scale.Reset())
	test.ExpectEquality(t, hz.Value(), 0)

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, hz.Value(), 6000000)
	test.ExpectEquality(t, scale.Value(), 1.5)
}

func TestDuration(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var d prefs.Duration
	test.ExpectSuccess(t, dsk.Add("throttle.interval", &d))
	test.ExpectSuccess(t, d.Set("13ms"))
	test.ExpectEquality(t, d.Value(), 13*time.Millisecond)

	// integers are nanoseconds
	test.ExpectSuccess(t, d.Set(1000))
	test.ExpectEquality(t, d.Value(), time.Microsecond)
	test.ExpectFailure(t, d.Set("soon"))

	test.ExpectSuccess(t, d.Set(20*time.Millisecond))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "throttle.interval: 20ms\n")

	test.ExpectSuccess(t, d.Reset())
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, d.Value(), 20*time.Millisecond)
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "foo: bar\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	err = dsk.Add("foo", &w)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))
}

func TestMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set(10))

	// values are untouched by loading a file that does not exist
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Value(), 10)
}

func TestBadFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("foo: [1, 2\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.LoadError))
}

// write a bool and then a string from a different prefs.Disk instance. the
// second write must not clobber the results of the first write
func TestUnknownKeysPreserved(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefFile(t, fn, "foo: bar\ntest: true\n")
}

func TestHookPost(t *testing.T) {
	var v prefs.Int
	var seen prefs.Value
	v.SetHookPost(func(value prefs.Value) error {
		seen = value
		return nil
	})
	test.ExpectSuccess(t, v.Set(42))
	test.ExpectEquality(t, seen, prefs.Value(42))
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("driver.clockhz: 1000\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var hz prefs.Int
	test.ExpectSuccess(t, dsk.Add("driver.clockhz", &hz))

	prefs.PushCommandLineStack("driver.clockhz::2000; unused::true")

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, hz.Value(), 2000)

	// the used entry has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::true")
}
