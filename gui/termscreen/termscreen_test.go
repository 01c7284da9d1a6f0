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

package termscreen_test

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/tokineco/screenpicture/display"
	"github.com/tokineco/screenpicture/gui/termscreen"
	"github.com/tokineco/screenpicture/test"
	"github.com/tokineco/screenpicture/tint"
)

type noLoader struct{}

func (noLoader) Load(name string) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func newScreen(t *testing.T) (*termscreen.Screen, tcell.SimulationScreen, *display.Pictures) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	pcs := display.NewPictures()
	tints := tint.NewCache(tint.ToneGenerator{}, func() (int, int) { return 80, 60 })
	srcs := display.NewSources(noLoader{}, tints)

	ts, err := termscreen.NewScreen(sim, 80, 60, pcs, srcs)
	test.DemandSuccess(t, err)
	t.Cleanup(ts.Fini)

	sim.SetSize(8, 4)

	return ts, sim, pcs
}

func background(sim tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := sim.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestDraw(t *testing.T) {
	ts, sim, pcs := newScreen(t)

	pcs.Show(91, display.ColorSource("fade", tint.Color{}), display.FullScreen(255))
	ts.Draw()

	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			test.ExpectEquality(t, background(sim, x, y), tcell.NewRGBColor(0, 0, 0), x, y)
		}
	}

	pcs.Erase(91)
	ts.Draw()
	test.ExpectInequality(t, background(sim, 0, 0), tcell.NewRGBColor(0, 0, 0))
}

func TestStatus(t *testing.T) {
	ts, sim, _ := newScreen(t)

	ts.SetStatus(func() string { return "screen: none" })
	ts.Draw()

	var s []rune
	for x := 0; x < 8; x++ {
		r, _, _, _ := sim.GetContent(x, 3)
		s = append(s, r)
	}
	test.ExpectEquality(t, string(s), "screen:…")
}
