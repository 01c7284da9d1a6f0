// This file is part of screenpicture.
//
// screenpicture is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// screenpicture is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with screenpicture.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/tokineco/screenpicture/curated"
	"github.com/tokineco/screenpicture/prefs"
	"github.com/tokineco/screenpicture/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		fmt.Println("expected:")
		fmt.Println(expected)
		fmt.Println("\nin file:")
		fmt.Println(string(data))
	}
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("display.assets", &v))
	test.ExpectSuccess(t, v.Set("img/pictures"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "display.assets :: img/pictures\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	err = dsk.Add("number", &v)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	// write values with one disk instance
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("overlay.screenPictureID", &v))
	test.ExpectSuccess(t, dsk.Add("overlay.fadePictureID", &w))
	test.ExpectSuccess(t, v.Set(70))
	test.ExpectSuccess(t, w.Set(71))
	test.DemandSuccess(t, dsk.Save())

	// a second disk instance only knows about one of the keys
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var x prefs.Int
	test.ExpectSuccess(t, dskB.Add("overlay.fadePictureID", &x))
	test.DemandSuccess(t, dskB.Load())
	test.ExpectEquality(t, x.Get().(int), 71)

	// saving the second instance preserves the unknown key
	test.ExpectSuccess(t, x.Set(72))
	test.DemandSuccess(t, dskB.Save())
	cmpFile(t, fn, "overlay.fadePictureID :: 72\noverlay.screenPictureID :: 70\n")

	// command line values take priority over the file
	prefs.PushCommandLineStack("overlay.fadePictureID::73")
	defer prefs.PopCommandLineStack()
	test.DemandSuccess(t, dskB.Load())
	test.ExpectEquality(t, x.Get().(int), 73)
}

func TestMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "missing"))
	test.DemandSuccess(t, err)
	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		seen = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(90))
	test.ExpectEquality(t, seen, 90)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 90)
}
