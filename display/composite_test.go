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
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/tokineco/screenpicture/display"
	"github.com/tokineco/screenpicture/test"
	"github.com/tokineco/screenpicture/tint"
)

// solidLoader loads every asset as a 4x4 image of a single colour.
type solidLoader struct {
	col color.RGBA
}

func (ldr solidLoader) Load(name string) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), &image.Uniform{ldr.col}, image.Point{}, draw.Src)
	return img, nil
}

func newCompositor(col color.RGBA) (display.Compositor, *display.Pictures) {
	pcs := display.NewPictures()
	tints := tint.NewCache(tint.ToneGenerator{}, func() (int, int) { return 4, 4 })
	return display.Compositor{
		Pictures: pcs,
		Sources:  display.NewSources(solidLoader{col: col}, tints),
		Backdrop: func(x, y float64) color.RGBA {
			return color.RGBA{R: 200, G: 200, B: 200, A: 255}
		},
	}, pcs
}

func TestComposite(t *testing.T) {
	cmp, pcs := newCompositor(color.RGBA{R: 255, A: 255})
	grey := color.RGBA{R: 200, G: 200, B: 200, A: 255}

	test.ExpectEquality(t, cmp.At(1, 1), grey)

	pcs.Show(1, display.AssetSource("red"), display.FullScreen(255))
	test.ExpectEquality(t, cmp.At(1, 1), color.RGBA{R: 255, A: 255})

	// outside of the picture
	test.ExpectEquality(t, cmp.At(5, 1), grey)

	pcs.Show(1, display.AssetSource("red"), display.FullScreen(0))
	test.ExpectEquality(t, cmp.At(1, 1), grey)

	pcs.Show(1, display.AssetSource("red"), display.FullScreen(51))
	test.ExpectEquality(t, cmp.At(1, 1), color.RGBA{R: 211, G: 160, B: 160, A: 255})

	// scaled pictures cover more of the display
	pl := display.FullScreen(255)
	pl.ScaleX = 200
	pl.ScaleY = 200
	pcs.Show(1, display.AssetSource("red"), pl)
	test.ExpectEquality(t, cmp.At(7, 7), color.RGBA{R: 255, A: 255})

	// centred pictures
	pl = display.FullScreen(255)
	pl.Origin = display.OriginCenter
	pl.X = 10
	pl.Y = 10
	pcs.Show(1, display.AssetSource("red"), pl)
	test.ExpectEquality(t, cmp.At(1, 1), grey)
	test.ExpectEquality(t, cmp.At(8, 8), color.RGBA{R: 255, A: 255})
}

func TestCompositeOrder(t *testing.T) {
	cmp, pcs := newCompositor(color.RGBA{R: 255, A: 255})

	// generated black picture over the red asset
	pcs.Show(91, display.ColorSource("fade", tint.Color{}), display.FullScreen(255))
	pcs.Show(90, display.AssetSource("red"), display.FullScreen(255))
	test.ExpectEquality(t, cmp.At(0, 0), color.RGBA{A: 255})

	pcs.Erase(91)
	test.ExpectEquality(t, cmp.At(0, 0), color.RGBA{R: 255, A: 255})
}

func TestCompositeBlend(t *testing.T) {
	cmp, pcs := newCompositor(color.RGBA{R: 100, G: 0, B: 255, A: 255})

	pl := display.FullScreen(255)
	pl.Blend = display.BlendAdditive
	pcs.Show(1, display.AssetSource("a"), pl)
	test.ExpectEquality(t, cmp.At(0, 0), color.RGBA{R: 255, G: 200, B: 255, A: 255})

	pl.Blend = display.BlendMultiply
	pcs.Show(1, display.AssetSource("a"), pl)
	test.ExpectEquality(t, cmp.At(0, 0), color.RGBA{R: 78, G: 0, B: 200, A: 255})

	pl.Blend = display.BlendScreen
	pcs.Show(1, display.AssetSource("a"), pl)
	test.ExpectEquality(t, cmp.At(0, 0), color.RGBA{R: 222, G: 200, B: 255, A: 255})
}
