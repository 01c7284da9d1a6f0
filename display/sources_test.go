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

package display_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tokineco/screenpicture/curated"
	"github.com/tokineco/screenpicture/display"
	"github.com/tokineco/screenpicture/test"
	"github.com/tokineco/screenpicture/tint"
)

// countingLoader counts the number of times each asset is loaded.
type countingLoader struct {
	count map[string]int
}

func (ldr *countingLoader) Load(name string) (image.Image, error) {
	ldr.count[name]++
	if name == "missing" {
		return nil, errors.New("file not found")
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func TestResolve(t *testing.T) {
	ldr := &countingLoader{count: make(map[string]int)}
	tints := tint.NewCache(tint.ToneGenerator{}, func() (int, int) { return 8, 8 })
	srcs := display.NewSources(ldr, tints)

	// assets are loaded once
	a, err := srcs.Resolve(display.AssetSource("ScreenPoisonMist"))
	test.ExpectSuccess(t, err)
	b, err := srcs.Resolve(display.AssetSource("ScreenPoisonMist"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, ldr.count["ScreenPoisonMist"], 1)

	// failed assets are only tried once
	_, err = srcs.Resolve(display.AssetSource("missing"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, display.AssetLoad))
	_, err = srcs.Resolve(display.AssetSource("missing"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, ldr.count["missing"], 1)

	// colour sources never use the loader
	c, err := srcs.Resolve(display.ColorSource("screen", tint.Color{R: 255}))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Bounds().Dx(), 8)
	test.ExpectEquality(t, tints.Len(), 1)
	test.ExpectEquality(t, len(ldr.count), 2)

	// the same colour from a different slot is the same image
	d, err := srcs.Resolve(display.ColorSource("fade", tint.Color{R: 255}))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, d)
	test.ExpectEquality(t, tints.Len(), 1)

	// names in the synthetic namespace are never loaded
	_, err = srcs.Resolve(display.AssetSource(tint.Key(tint.Color{})))
	test.ExpectSuccess(t, curated.Is(err, display.SyntheticAsset))
	test.ExpectEquality(t, len(ldr.count), 2)
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	f, err := os.Create(filepath.Join(dir, "mist.png"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, png.Encode(f, img))
	test.DemandSuccess(t, f.Close())

	ldr := display.DirLoader{Dir: dir}
	ld, err := ldr.Load("mist")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.Bounds().Dx(), 3)
	r, g, b, _ := ld.At(1, 1).RGBA()
	test.ExpectEquality(t, r>>8, uint32(10))
	test.ExpectEquality(t, g>>8, uint32(20))
	test.ExpectEquality(t, b>>8, uint32(30))

	_, err = ldr.Load("absent")
	test.ExpectFailure(t, err)
}

func TestPreferences(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	test.DemandSuccess(t, os.Mkdir(".screenpicture", 0o700))

	p, err := display.NewPreferences()
	test.DemandSuccess(t, err)
	w, h := p.Viewport()
	test.ExpectEquality(t, w, 816)
	test.ExpectEquality(t, h, 624)

	test.ExpectSuccess(t, p.Width.Set(1280))
	test.ExpectSuccess(t, p.Height.Set(720))
	test.DemandSuccess(t, p.Save())

	q, err := display.NewPreferences()
	test.DemandSuccess(t, err)
	w, h = q.Viewport()
	test.ExpectEquality(t, w, 1280)
	test.ExpectEquality(t, h, 720)
	test.ExpectEquality(t, q.Assets.String(), "img/pictures")
}
